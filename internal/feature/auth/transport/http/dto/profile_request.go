package dto

// UpdateProfileReq represents the request body for PUT /profile.
// Only display name and avatar are editable; email, password, role and
// activation flag are never updatable through the profile.
type UpdateProfileReq struct {
	FirstName      string `json:"first_name" binding:"required,max=255"`
	LastName       string `json:"last_name" binding:"required,max=255"`
	ProfilePicture string `json:"profile_picture" binding:"omitempty,url,max=500"`
}
