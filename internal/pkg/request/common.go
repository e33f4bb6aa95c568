package request

// ByIDRequest is a common struct for endpoints addressed by a numeric ID path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// ByUUIDRequest is used by endpoints addressed by a UUID path parameter.
type ByUUIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
