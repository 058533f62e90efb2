package dto

import (
	"github.com/google/uuid"

	"classbook/internal/domains/user/model"
	"classbook/shared"
	gDto "classbook/shared/dto"
	gModel "classbook/shared/model"
	"classbook/shared/timezone"
)

type CreateUserRequest struct {
	Username string `json:"username"  validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	Role     string `json:"role"      validate:"required,oneof=admin requester"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
}

func (c *CreateUserRequest) ToModel(hashedPassword, createdBy string) model.User {
	var fullName *string
	if c.FullName != "" {
		fullName = &c.FullName
	}

	return model.User{
		ID:       uuid.NewString(),
		Username: c.Username,
		Email:    c.Email,
		Password: hashedPassword,
		Role:     c.Role,
		FullName: fullName,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name,omitempty"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.Role = model.Role
	r.Active = model.Active

	if model.FullName != nil {
		r.FullName = *model.FullName
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
