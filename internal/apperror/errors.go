package apperror

// Message ids double as translation keys.
const (
	MsgTaskNotFound        = "taskNotFound"
	MsgUserNotFound        = "userNotFound"
	MsgManagerNotFound     = "managerNotFound"
	MsgNotAuthorized       = "notAuthorized"
	MsgNotAuthenticated    = "notAuthenticated"
	MsgCommentRequired     = "commentRequired"
	MsgTitleRequired       = "titleRequired"
	MsgTitleTooLong        = "titleTooLong"
	MsgInvalidStatus       = "invalidStatus"
	MsgInvalidDeadline     = "invalidDeadline"
	MsgInvalidAssignee     = "invalidAssignee"
	MsgInvalidPayload      = "invalidPayload"
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidFilter       = "invalidFilter"
	MsgSelfManager         = "selfManager"
	MsgFailedToUpdateTask  = "failedToUpdateTask"
	MsgInternal            = "internalError"
	MsgTaskUpdated         = "taskUpdated"
	MsgTaskDeleted         = "taskDeleted"
	MsgCommentAdded        = "commentAdded"
	MsgManagerUpdated      = "managerUpdated"
	MsgInvalidAuthHeader   = "invalidAuthHeader"
	MsgAuthHeaderRequired  = "authHeaderRequired"
	MsgInvalidOrExpiredJWT = "invalidOrExpiredToken"
)

var (
	ErrTaskNotFound       = New(CodeNotFound, MsgTaskNotFound)
	ErrUserNotFound       = New(CodeNotFound, MsgUserNotFound)
	ErrManagerNotFound    = New(CodeNotFound, MsgManagerNotFound)
	ErrNotAuthorized      = New(CodeUnauthorized, MsgNotAuthorized)
	ErrUnauthenticated    = New(CodeUnauthenticated, MsgNotAuthenticated)
	ErrCommentRequired    = New(CodeValidation, MsgCommentRequired)
	ErrTitleRequired      = New(CodeValidation, MsgTitleRequired)
	ErrTitleTooLong       = New(CodeValidation, MsgTitleTooLong)
	ErrInvalidStatus      = New(CodeValidation, MsgInvalidStatus)
	ErrInvalidDeadline    = New(CodeValidation, MsgInvalidDeadline)
	ErrInvalidAssignee    = New(CodeValidation, MsgInvalidAssignee)
	ErrInvalidPayload     = New(CodeValidation, MsgInvalidPayload)
	ErrInvalidTaskID      = New(CodeValidation, MsgInvalidTaskID)
	ErrInvalidFilter      = New(CodeInvalidFilter, MsgInvalidFilter)
	ErrInvalidAssignment  = New(CodeInvalidAssignment, MsgSelfManager)
	ErrFailedToUpdateTask = New(CodeInternal, MsgFailedToUpdateTask)
)
