package apierrors

const (
	MsgInvalidJSON            = "invalidJSON"
	MsgMissingFields          = "missingFields"
	MsgInvalidEmail           = "invalidEmail"
	MsgPasswordTooShort       = "passwordTooShort"
	MsgInvalidProfile         = "invalidProfile"
	MsgInvalidPasswordPayload = "invalidPasswordPayload"
	MsgUserExists             = "userExists"
	MsgEmailInUse             = "emailInUse"
	MsgInvalidCredentials     = "invalidCredentials"
	MsgWrongCurrentPassword   = "wrongCurrentPassword"
	MsgNotAuthorized          = "notAuthorized"
	MsgUserNotFound           = "userNotFound"
	MsgPasswordChanged        = "passwordChanged"
	MsgInvalidTaskID          = "invalidTaskID"
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgTaskNotFound           = "taskNotFound"
	MsgTaskDeleted            = "taskDeleted"
	MsgServerError            = "serverError"
	MsgRouteNotFound          = "routeNotFound"
)
