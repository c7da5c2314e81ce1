package out

import (
	"context"

	"skillbridge/internal/modules/auth/domain"
	"skillbridge/internal/modules/auth/dto"
	authout "skillbridge/internal/modules/auth/port/out"
	"skillbridge/internal/platform/api"
)

// HTTPAuthAPI speaks the backend's credential endpoints. None of them
// carry a bearer token.
type HTTPAuthAPI struct {
	client *api.Client
}

func NewHTTPAuthAPI(client *api.Client) authout.AuthAPI {
	return &HTTPAuthAPI{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int    `json:"user_id"`
	Email       string `json:"email"`
}

func (a *HTTPAuthAPI) Login(ctx context.Context, email, password string) (domain.Session, error) {
	var resp loginResponse
	if err := a.client.Post(ctx, "/login", loginRequest{Email: email, Password: password}, false, &resp); err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Token: resp.AccessToken,
		User:  domain.User{ID: resp.UserID, Email: resp.Email},
	}, nil
}

type signupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (a *HTTPAuthAPI) Signup(ctx context.Context, input dto.SignupInput) (string, error) {
	var resp messageResponse
	req := signupRequest{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	}
	if err := a.client.Post(ctx, "/create_user", req, false, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

type otpRequest struct {
	Email string `json:"email"`
}

type otpVerifyRequest struct {
	Email   string `json:"email"`
	OTPCode string `json:"otp_code"`
}

func (a *HTTPAuthAPI) RequestOTP(ctx context.Context, email string) (string, error) {
	var resp messageResponse
	if err := a.client.Post(ctx, "/request_otp", otpRequest{Email: email}, false, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *HTTPAuthAPI) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	var resp messageResponse
	if err := a.client.Post(ctx, "/verify_otp", otpVerifyRequest{Email: email, OTPCode: code}, false, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
