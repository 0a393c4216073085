package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

type PartnerRequest struct {
	CompanyName  string `json:"companyName"`
	ContactName  string `json:"contactName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessType string `json:"businessType"`
	Address      string `json:"address"`
	Message      string `json:"message"`
}

func (r PartnerRequest) ToDomain() domain.Partner {
	return domain.Partner{
		CompanyName:  r.CompanyName,
		ContactName:  r.ContactName,
		Email:        r.Email,
		Phone:        r.Phone,
		BusinessType: r.BusinessType,
		Address:      r.Address,
		Message:      r.Message,
	}
}

type Partner struct {
	ID           uuid.UUID  `json:"id"`
	CompanyName  string     `json:"companyName"`
	ContactName  string     `json:"contactName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	BusinessType string     `json:"businessType,omitempty"`
	Address      string     `json:"address,omitempty"`
	Message      string     `json:"message,omitempty"`
	Status       string     `json:"status"`
	ReviewNotes  string     `json:"reviewNotes,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type PartnerPage struct {
	Partners []Partner `json:"partners"`
	Total    int       `json:"total"`
}

type PartnerReviewRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (r PartnerReviewRequest) ToDomain() domain.PartnerReview {
	return domain.PartnerReview{Status: domain.PartnerStatus(r.Status), Notes: r.Notes}
}

func FromPartner(p domain.Partner) Partner {
	return Partner{
		ID:           p.ID,
		CompanyName:  p.CompanyName,
		ContactName:  p.ContactName,
		Email:        p.Email,
		Phone:        p.Phone,
		BusinessType: p.BusinessType,
		Address:      p.Address,
		Message:      p.Message,
		Status:       string(p.Status),
		ReviewNotes:  p.ReviewNotes,
		ReviewedAt:   p.ReviewedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromPartnerPage(page domain.PartnerPage) PartnerPage {
	partners := make([]Partner, 0, len(page.Partners))
	for _, p := range page.Partners {
		partners = append(partners, FromPartner(p))
	}
	return PartnerPage{Partners: partners, Total: page.Total}
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

type UserUpdateRequest struct {
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

func (r UserUpdateRequest) ToDomain() (domain.UserUpdate, error) {
	update := domain.UserUpdate{Active: r.Active}

	if r.Role != nil {
		role, err := domain.ParseRole(*r.Role)
		if err != nil {
			return domain.UserUpdate{}, domain.NewValidationError("role", err.Error())
		}
		update.Role = &role
	}

	if update.Role == nil && update.Active == nil {
		return domain.UserUpdate{}, domain.NewValidationError("role", "role or active is required")
	}

	return update, nil
}

func FromUser(u domain.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromUserPage(page domain.UserPage) UserPage {
	users := make([]User, 0, len(page.Users))
	for _, u := range page.Users {
		users = append(users, FromUser(u))
	}
	return UserPage{Users: users, Total: page.Total}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r ContactRequest) ToDomain() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type ErrorResponse struct {
	Error  string         `json:"error"`
	Issues []domain.Issue `json:"issues,omitempty"`
}
