package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gitlab.com/codearena.net/internal/config"
	auth2 "gitlab.com/codearena.net/internal/core/services/auth"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
)

type ServiceDependencies struct {
	GGAuthService       auth2.IAuthService
	LocalAuthService    auth2.IAuthService
	RegistrationService auth2.IRegistrationService
}

// GoogleUser decodes the Google userinfo API response
type GoogleUser struct {
	ID    string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Handler struct {
	providerHandler map[domain.Provider]auth2.IAuthService
	registration    auth2.IRegistrationService
	oauthConfig     *oauth2.Config
	middleware      *handlers.MiddlewareProvider
}

func NewHandler(ggCfg *config.GGAuthConfig, middleware *handlers.MiddlewareProvider) *Handler {
	return &Handler{
		providerHandler: make(map[domain.Provider]auth2.IAuthService),
		oauthConfig: &oauth2.Config{
			ClientID:     ggCfg.ClientID,
			ClientSecret: ggCfg.ClientSecret,
			RedirectURL:  ggCfg.RedirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		middleware: middleware,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, svcDep *ServiceDependencies) {
	h.providerHandler[domain.ProviderGoogle] = svcDep.GGAuthService
	h.providerHandler[domain.ProviderLocal] = svcDep.LocalAuthService
	h.registration = svcDep.RegistrationService

	router.HandleFunc("/api/register", h.Register).Methods("POST")
	router.HandleFunc("/api/login", h.Login).Methods("POST")
	router.Handle("/api/me", h.middleware.JWTMiddleware(http.HandlerFunc(h.Me))).Methods("GET")
	router.HandleFunc("/auth/google", h.GoogleLoginHandler).Methods("GET")
	router.HandleFunc("/auth/callback", h.GoogleCallbackHandler).Methods("GET")
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a local account
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		response.WriteError(w, response.ErrorMessage{Message: "name, email and password are required", StatusCode: http.StatusBadRequest})
		return
	}

	if err := h.registration.Register(r.Context(), req.Name, req.Email, req.Password, req.Role); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest})
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// Login authenticates a local account and returns a token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	loginResp, err := h.providerHandler[domain.ProviderLocal].Login(r.Context(), &domain.Users{
		Email:        &req.Email,
		PasswordHash: &req.Password,
	})
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusUnauthorized})
		return
	}

	response.WriteSuccess(w, loginResp)
}

// Me echoes the authenticated caller's identity
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]interface{}{
		"user": map[string]string{
			"userId": handlers.UserIDFromContext(r.Context()),
			"role":   handlers.RoleFromContext(r.Context()),
		},
	})
}

// GoogleLoginHandler redirects the user to Google OAuth2 login
func (h *Handler) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	url := h.oauthConfig.AuthCodeURL("randomstate")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallbackHandler handles the Google OAuth2 callback
func (h *Handler) GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "No code in URL", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		http.Error(w, "Failed to get token", http.StatusInternalServerError)
		return
	}

	client := h.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var googleUser GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		http.Error(w, "Failed to decode user info", http.StatusInternalServerError)
		return
	}

	loginResp, err := h.providerHandler[domain.ProviderGoogle].Login(ctx, &domain.Users{
		Name:         googleUser.Name,
		GoogleID:     &googleUser.ID,
		Email:        &googleUser.Email,
		AuthProvider: string(domain.ProviderGoogle),
	})
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusUnauthorized,
		})
		return
	}

	response.WriteSuccess(w, loginResp)
}
