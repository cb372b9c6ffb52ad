package dto

// UpdateProfileReq represents a partial profile update. Nil fields are left
// untouched; an empty logo clears the stored one.
type UpdateProfileReq struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password"`
	TwitchURL *string `json:"twitchUrl"`
	Logo      *string `json:"logo"`
}
