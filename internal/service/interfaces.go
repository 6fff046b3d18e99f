package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProfileServiceInterface defines the profile business logic surface
type ProfileServiceInterface interface {
	CreateProfile(userID uint, req *CreateProfileRequest) (*ProfileResponse, error)
	GetProfileByUserID(userID uint) (*ProfileResponse, error)
	UpdateProfile(userID uint, req *UpdateProfileRequest) (*ProfileResponse, error)
	GetPublicProfile(username string) (*PublicProfileResponse, error)
}

// LinkServiceInterface defines the link business logic surface
type LinkServiceInterface interface {
	ListLinks(profileID uint) ([]LinkResponse, error)
	CreateLink(profileID uint, req *CreateLinkRequest) (*LinkResponse, error)
	UpdateLink(profileID, linkID uint, req *UpdateLinkRequest) (*LinkResponse, error)
	DeleteLink(profileID, linkID uint) error
	ReorderLinks(profileID uint, ids []uint) ([]LinkResponse, error)
}

// PublicPageCache caches rendered public page payloads keyed by username.
// Implementations own their timeouts; a nil cache disables caching entirely.
type PublicPageCache interface {
	Get(username string) ([]byte, bool)
	Set(username string, payload []byte)
	Invalidate(username string)
}
