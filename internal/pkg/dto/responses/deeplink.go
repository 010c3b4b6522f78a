package responses

type FirebaseShortLink struct {
	ShortLink   string `json:"shortLink"`
	PreviewLink string `json:"previewLink"`
}

type BranchLink struct {
	URL string `json:"url"`
}
