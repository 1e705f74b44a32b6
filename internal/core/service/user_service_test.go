package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
	"github.com/nevseti/fincloud-system/internal/core/ports"
)

var (
	adminClaims      = auth.Claims{UserID: 100, Role: domain.RoleSystemAdmin}
	accountantClaims = auth.Claims{UserID: 101, Role: domain.RoleAccountant, BranchID: 1}
)

func newUserService(repo ports.UserRepository) *UserService {
	return NewUserService(repo, auth.NewHasher(bcrypt.MinCost), zerolog.Nop())
}

func seedUser(t *testing.T, repo *stubUserRepo, email, role string, branch int) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		Email:        email,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhashnotarealha",
		Role:         role,
		BranchID:     branch,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func TestUserService_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	for _, caller := range []auth.Claims{accountantClaims, {UserID: 102, Role: domain.RoleManager}} {
		if _, err := svc.List(ctx, caller); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("List as %s error = %v, want ErrForbidden", caller.Role, err)
		}
		if _, err := svc.Create(ctx, caller, ports.RegisterInput{}); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("Create as %s error = %v, want ErrForbidden", caller.Role, err)
		}
		if _, err := svc.Update(ctx, caller, 1, ports.UpdateUserInput{}); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("Update as %s error = %v, want ErrForbidden", caller.Role, err)
		}
		if err := svc.Delete(ctx, caller, 1); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("Delete as %s error = %v, want ErrForbidden", caller.Role, err)
		}
	}
}

func TestUserService_CreateAndList(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminClaims, ports.RegisterInput{
		Email:    "new@fincloud.io",
		Password: "secret",
		Role:     domain.RoleManager,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.PasswordHash == "secret" || created.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}

	users, err := svc.List(ctx, adminClaims)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 1 || users[0].Email != "new@fincloud.io" {
		t.Fatalf("List = %+v, want the created user", users)
	}
}

func TestUserService_Update(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "old@fincloud.io", domain.RoleAccountant, 1)
	other := seedUser(t, repo, "taken@fincloud.io", domain.RoleManager, 0)

	newEmail := "moved@fincloud.io"
	newRole := domain.RoleManager
	newBranch := 3
	updated, err := svc.Update(ctx, adminClaims, u.ID, ports.UpdateUserInput{
		Email:    &newEmail,
		Role:     &newRole,
		BranchID: &newBranch,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Email != newEmail || updated.Role != newRole || updated.BranchID != newBranch {
		t.Fatalf("Update = %+v, want all three fields changed", updated)
	}

	// Password change re-hashes.
	newPassword := "rotated"
	updated, err = svc.Update(ctx, adminClaims, u.ID, ports.UpdateUserInput{Password: &newPassword})
	if err != nil {
		t.Fatalf("password Update returned error: %v", err)
	}
	if !auth.NewHasher(bcrypt.MinCost).Verify(newPassword, updated.PasswordHash) {
		t.Fatalf("updated hash does not verify the new password")
	}

	// A conflicting email is rejected before the store is touched.
	takenEmail := other.Email
	if _, err := svc.Update(ctx, adminClaims, u.ID, ports.UpdateUserInput{Email: &takenEmail}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("conflicting email error = %v, want ErrEmailTaken", err)
	}

	badRole := "root"
	if _, err := svc.Update(ctx, adminClaims, u.ID, ports.UpdateUserInput{Role: &badRole}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("invalid role error = %v, want ErrInvalidInput", err)
	}

	if _, err := svc.Update(ctx, adminClaims, 9999, ports.UpdateUserInput{}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("unknown id error = %v, want ErrUserNotFound", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "gone@fincloud.io", domain.RoleAccountant, 1)

	if err := svc.Delete(ctx, adminClaims, u.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(ctx, adminClaims, u.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("second Delete error = %v, want ErrUserNotFound", err)
	}
}
