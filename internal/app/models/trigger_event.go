package models

// TriggerEvent is the envelope the identity provider sends to its custom
// authentication hooks. The same value is returned with Response filled in.
type TriggerEvent struct {
	Version       string          `json:"version"`
	TriggerSource string          `json:"triggerSource"`
	Region        string          `json:"region,omitempty"`
	UserPoolID    string          `json:"userPoolId,omitempty"`
	UserName      string          `json:"userName"`
	CallerContext map[string]any  `json:"callerContext,omitempty"`
	Request       TriggerRequest  `json:"request"`
	Response      TriggerResponse `json:"response"`
}

type TriggerRequest struct {
	UserAttributes             map[string]string `json:"userAttributes,omitempty"`
	Session                    []ChallengeResult `json:"session,omitempty"`
	ChallengeName              string            `json:"challengeName,omitempty"`
	ChallengeAnswer            string            `json:"challengeAnswer,omitempty"`
	PrivateChallengeParameters map[string]string `json:"privateChallengeParameters,omitempty"`
}

type ChallengeResult struct {
	ChallengeName     string `json:"challengeName"`
	ChallengeResult   bool   `json:"challengeResult"`
	ChallengeMetadata string `json:"challengeMetadata,omitempty"`
}

// TriggerResponse holds the union of fields the hooks may set. Pointers keep
// an explicit false on the wire.
type TriggerResponse struct {
	ChallengeName              string            `json:"challengeName,omitempty"`
	IssueTokens                *bool             `json:"issueTokens,omitempty"`
	FailAuthentication         *bool             `json:"failAuthentication,omitempty"`
	PublicChallengeParameters  map[string]string `json:"publicChallengeParameters,omitempty"`
	PrivateChallengeParameters map[string]string `json:"privateChallengeParameters,omitempty"`
	ChallengeMetadata          string            `json:"challengeMetadata,omitempty"`
	AnswerCorrect              *bool             `json:"answerCorrect,omitempty"`
	AutoConfirmUser            *bool             `json:"autoConfirmUser,omitempty"`
	AutoVerifyEmail            *bool             `json:"autoVerifyEmail,omitempty"`
}
