package commands

// User-facing messages.
const (
	MsgWelcome        = "Welcome to your Todo app"
	MsgAdded          = "Todo item added successfully!"
	MsgEmptyText      = "Todo text cannot be empty."
	MsgCompleted      = "Todo item marked as completed!"
	MsgNotFound       = "Todo item not found."
	MsgInvalidID      = "Invalid todo id: %q. Expected a non-negative number."
	MsgInvalidCommand = "Invalid command. Type '?' to see available commands."
	MsgExiting        = "Exiting..."
)
