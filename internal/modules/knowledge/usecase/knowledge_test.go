package usecase_test

import (
	"context"
	"errors"
	"testing"

	authdto "skillbridge/internal/modules/auth/dto"
	"skillbridge/internal/modules/knowledge/domain"
	"skillbridge/internal/modules/knowledge/dto"
	knowledgein "skillbridge/internal/modules/knowledge/port/in"
	"skillbridge/internal/modules/knowledge/service"
	"skillbridge/internal/modules/knowledge/usecase"
	apperrors "skillbridge/internal/platform/errors"
)

type fakeIdentity struct {
	session authdto.SessionOutput
	ok      bool
}

func (f fakeIdentity) Restore(context.Context) (authdto.SessionOutput, bool) { return f.session, f.ok }
func (f fakeIdentity) Login(context.Context, authdto.LoginInput) (authdto.LoginOutput, error) {
	return authdto.LoginOutput{}, nil
}
func (f fakeIdentity) Logout(context.Context) {}
func (f fakeIdentity) Signup(context.Context, authdto.SignupInput) (authdto.SignupOutput, error) {
	return authdto.SignupOutput{}, nil
}
func (f fakeIdentity) RequestOTP(context.Context, string) (authdto.MessageOutput, error) {
	return authdto.MessageOutput{}, nil
}
func (f fakeIdentity) VerifyOTP(context.Context, string, string) (authdto.MessageOutput, error) {
	return authdto.MessageOutput{}, nil
}
func (f fakeIdentity) Current(context.Context) (authdto.SessionOutput, bool) {
	return f.session, f.ok
}
func (f fakeIdentity) Invalidate(context.Context) {}

type fakeAPI struct {
	calls      int
	userID     int
	assessment domain.Assessment
}

func (f *fakeAPI) Update(_ context.Context, userID int, assessment domain.Assessment) (string, error) {
	f.calls++
	f.userID = userID
	f.assessment = assessment
	return "Knowledge updated", nil
}

func newUsecase(api *fakeAPI, identity fakeIdentity) knowledgein.Usecase {
	return usecase.NewInteractor(service.NewKnowledgeService(), api, identity)
}

func TestUpdateRequiresSession(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := newUsecase(api, fakeIdentity{})

	_, err := uc.Update(context.Background(), dto.UpdateInput{ConceptName: "maps", Level: 3})
	if !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if api.calls != 0 {
		t.Fatal("guard failure must not reach the backend")
	}
}

func TestUpdateValidatesLevelBounds(t *testing.T) {
	t.Parallel()
	identity := fakeIdentity{session: authdto.SessionOutput{UserID: 4}, ok: true}
	for _, level := range []int{0, 6, -1} {
		api := &fakeAPI{}
		uc := newUsecase(api, identity)
		_, err := uc.Update(context.Background(), dto.UpdateInput{ConceptName: "maps", Level: level})
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("level %d: expected ErrInvalidInput, got %v", level, err)
		}
		if api.calls != 0 {
			t.Fatalf("level %d: invalid level must not reach the backend", level)
		}
	}
}

func TestUpdateSendsNormalizedAssessment(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	identity := fakeIdentity{session: authdto.SessionOutput{UserID: 4}, ok: true}
	uc := newUsecase(api, identity)

	out, err := uc.Update(context.Background(), dto.UpdateInput{ConceptName: "  goroutines ", Level: 5})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if api.userID != 4 {
		t.Fatalf("expected session user 4, got %d", api.userID)
	}
	if api.assessment.ConceptName != "goroutines" || api.assessment.Level != 5 {
		t.Fatalf("unexpected assessment %+v", api.assessment)
	}
	if out.Message != "Knowledge updated" {
		t.Fatalf("unexpected message %q", out.Message)
	}
}
