package requests

type FirebaseShortLink struct {
	DynamicLinkInfo FirebaseDynamicLinkInfo `json:"dynamicLinkInfo"`
	Suffix          FirebaseSuffix          `json:"suffix"`
}

type FirebaseDynamicLinkInfo struct {
	DomainUriPrefix string                 `json:"domainUriPrefix"`
	Link            string                 `json:"link"`
	AndroidInfo     *FirebaseAndroidInfo   `json:"androidInfo,omitempty"`
	IosInfo         *FirebaseIosInfo       `json:"iosInfo,omitempty"`
	SocialMetaTag   *FirebaseSocialMetaTag `json:"socialMetaTagInfo,omitempty"`
}

type FirebaseAndroidInfo struct {
	AndroidPackageName string `json:"androidPackageName"`
}

type FirebaseIosInfo struct {
	IosBundleId   string `json:"iosBundleId"`
	IosAppStoreId string `json:"iosAppStoreId,omitempty"`
}

type FirebaseSocialMetaTag struct {
	SocialTitle string `json:"socialTitle,omitempty"`
}

type FirebaseSuffix struct {
	Option string `json:"option"`
}

// BranchLink is the body of Branch's POST /v1/url.
type BranchLink struct {
	BranchKey string            `json:"branch_key"`
	Channel   string            `json:"channel,omitempty"`
	Feature   string            `json:"feature,omitempty"`
	Data      map[string]string `json:"data"`
}
