package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=8" example:"correct-horse"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	Address string `json:"address" example:"alice"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=8" example:"correct-horse"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Address string `json:"address" example:"alice"`
}
