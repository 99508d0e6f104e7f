package shared

// Client-facing messages.
const (
	MsgInvalidJSON       = "The request body is not valid JSON."
	MsgInvalidJSONObject = "The JSON object in the request was omitted or malformed."
	MsgBodyTooLarge      = "The request body is too large."
	MsgNoSuchItem        = "No item with the given id was found."
	MsgSaveFailed        = "The item could not be saved."
	MsgFetchFailed       = "The item/items could not be fetched."
	MsgRemoveFailed      = "The item could not be removed."
	MsgUnexpectedStatus  = "Not a valid response code."
	MsgNotUpdatable      = "This resource does not support updates."
	MsgDeleted           = "The item was successfully removed."
	MsgUpdated           = "The item was successfully updated."
	MsgUnexpected        = "An unexpected error occurred"
)
