package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Hint     string `json:"hint" validate:"max=255"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	Status  string              `json:"status" example:"SUCCESS"`
	Hint    string              `json:"hint,omitempty"`
	Records []RecordResponseDTO `json:"records,omitempty"`
}
