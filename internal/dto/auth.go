package dto

type RegisterRequestDTO struct {
	Card     string `json:"card" example:"4561261212345467"`
	Password string `json:"password" example:"password123"`
}

type RegisterResponseDTO struct {
	Message    string `json:"message"`
	CustomerID int64  `json:"customer_id" example:"3423432"`
}

type LoginRequestDTO struct {
	Card     string `json:"card" example:"4561261212345467"`
	Password string `json:"password" example:"password123"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
