package service

import (
	"context"
	"errors"
	"testing"

	"github.com/velocar/rental-system/internal/core/domain"
)

func seededContractRepo() *stubContractRepo {
	return &stubContractRepo{contracts: []*domain.Contract{
		{ID: "c1", ContractNumber: "CONT-1", ReservationID: "res-1", UserID: clientActor.UserID},
		{ID: "c2", ContractNumber: "CONT-2", ReservationID: "res-2", UserID: otherActor.UserID},
	}}
}

func TestContractService_ListAll_AdminOnly(t *testing.T) {
	svc := NewContractService(seededContractRepo(), discardLogger)

	if _, err := svc.ListAll(context.Background(), clientActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("client ListAll: got %v, want ErrForbidden", err)
	}

	all, err := svc.ListAll(context.Background(), adminActor)
	if err != nil {
		t.Fatalf("admin ListAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 contracts, got %d", len(all))
	}
}

func TestContractService_ListMine(t *testing.T) {
	svc := NewContractService(seededContractRepo(), discardLogger)

	mine, err := svc.ListMine(context.Background(), clientActor)
	if err != nil {
		t.Fatalf("ListMine failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "c1" {
		t.Errorf("expected only own contracts, got %d items", len(mine))
	}
}

func TestContractService_GetByID_Ownership(t *testing.T) {
	svc := NewContractService(seededContractRepo(), discardLogger)

	if _, err := svc.GetByID(context.Background(), "c1", clientActor); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "c2", clientActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign read: got %v, want ErrForbidden", err)
	}
	if _, err := svc.GetByID(context.Background(), "c2", adminActor); err != nil {
		t.Errorf("admin read failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "ghost", clientActor); !errors.Is(err, domain.ErrContractNotFound) {
		t.Errorf("missing contract: got %v, want ErrContractNotFound", err)
	}
}
