package dto

// PageQuery is bound from the skip/limit query string shared by every list
// endpoint. Offset/limit is the only pagination scheme offered.
type PageQuery struct {
	Skip  int `form:"skip,default=0"   validate:"min=0"`
	Limit int `form:"limit,default=100" validate:"min=1,max=500"`
}

// MessageResponse carries a human-readable confirmation for destructive ops.
type MessageResponse struct {
	Message string `json:"message"`
}
