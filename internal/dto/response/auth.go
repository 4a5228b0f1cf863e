package response

import (
	"time"

	"resort-admin/internal/data/entity"
)

type AuthResponse struct {
	AdminID   string    `json:"admin_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
}

type AdminResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    *string    `json:"full_name,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Helper converters
func AdminToResponse(a *entity.Admin) AdminResponse {
	return AdminResponse{
		ID:          a.ID.String(),
		Username:    a.Username,
		Email:       a.Email,
		FullName:    a.FullName,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
	}
}

func AuthToResponse(admin *entity.Admin, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		AdminID:  admin.ID.String(),
		Username: admin.Username,
		Email:    admin.Email,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
