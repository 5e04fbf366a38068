package middleware

// Session and context keys shared by the middleware chain and controllers.
const (
	SessionKeyUserID   = "user_id"
	SessionKeyLang     = "lang"
	SessionKeyRemember = "remember_me"
	SessionKeyNext     = "next"

	ContextUser = "currentUser"
	ContextLang = "lang"
)
