package models

const vimeoPlayerURL = "https://player.vimeo.com/video/"

type Video struct {
	ID          FlexString `json:"_id"`
	Title       string     `json:"title"`
	VimeoID     FlexString `json:"vimeo_id"`
	Description string     `json:"description"`
}

// EmbedURL is the Vimeo player address for the video.
func (v Video) EmbedURL() string {
	return vimeoPlayerURL + string(v.VimeoID)
}

type VideoInput struct {
	Title       string `json:"title"`
	VimeoID     string `json:"vimeo_id"`
	Description string `json:"description"`
}
