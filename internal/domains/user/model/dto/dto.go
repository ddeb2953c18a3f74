package dto

import (
	"servicehub/internal/domains/user/model"
	"servicehub/shared/constant"
	gDto "servicehub/shared/dto"
	"servicehub/shared/timezone"
)

type UpdateProfileRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,min=2,max=100"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,e164"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  string  `json:"full_name"`
	Phone     *string `json:"phone"`
	LastLogin *string `json:"last_login"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.Role = user.Role
	r.FullName = user.FullName
	r.Phone = user.Phone
	r.Active = user.Active

	if user.LastLogin != nil {
		lastLogin := timezone.Format(*user.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(user.Metadata)
}
