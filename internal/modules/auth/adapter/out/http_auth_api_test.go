package out_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapter "skillbridge/internal/modules/auth/adapter/out"
	"skillbridge/internal/modules/auth/dto"
	"skillbridge/internal/platform/api"
)

func TestLoginDecodesSession(t *testing.T) {
	t.Parallel()
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"access_token":"tok-xyz","user_id":12,"email":"a@b.c"}`))
	}))
	defer server.Close()

	authAPI := adapter.NewHTTPAuthAPI(api.NewClient(server.URL, time.Second, nil))
	session, err := authAPI.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Token != "tok-xyz" || session.User.ID != 12 || session.User.Email != "a@b.c" {
		t.Fatalf("unexpected session %+v", session)
	}
	if gotBody["email"] != "a@b.c" || gotBody["password"] != "secret" {
		t.Fatalf("unexpected request body %v", gotBody)
	}
}

func TestSignupSendsNameFields(t *testing.T) {
	t.Parallel()
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/create_user" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"User created successfully!"}`))
	}))
	defer server.Close()

	authAPI := adapter.NewHTTPAuthAPI(api.NewClient(server.URL, time.Second, nil))
	message, err := authAPI.Signup(context.Background(), dto.SignupInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@b.c", Password: "pw", ConfirmPassword: "pw",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if message != "User created successfully!" {
		t.Fatalf("unexpected message %q", message)
	}
	if gotBody["first_name"] != "Ada" || gotBody["last_name"] != "Lovelace" {
		t.Fatalf("unexpected request body %v", gotBody)
	}
	if _, ok := gotBody["confirm_password"]; ok {
		t.Fatal("confirmation is client-side only and must not go on the wire")
	}
}

func TestVerifyOTPSendsCode(t *testing.T) {
	t.Parallel()
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/verify_otp" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"message":"Email verified"}`))
	}))
	defer server.Close()

	authAPI := adapter.NewHTTPAuthAPI(api.NewClient(server.URL, time.Second, nil))
	message, err := authAPI.VerifyOTP(context.Background(), "a@b.c", "123456")
	if err != nil {
		t.Fatalf("verify otp: %v", err)
	}
	if message != "Email verified" {
		t.Fatalf("unexpected message %q", message)
	}
	if gotBody["otp_code"] != "123456" {
		t.Fatalf("unexpected request body %v", gotBody)
	}
}
