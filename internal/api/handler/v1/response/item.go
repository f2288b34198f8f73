package response

type SuccessResponse struct {
	Success bool `json:"success"`
}

func Success() SuccessResponse {
	return SuccessResponse{Success: true}
}
