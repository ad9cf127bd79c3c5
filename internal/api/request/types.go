package request

// PlayGameRequest is the request body for playing a game. Username is
// optional; without it the game is anonymous and no statistics are kept.
type PlayGameRequest struct {
	Username   string `json:"username,omitempty"`
	PlayerHand string `json:"player_hand"`
}

// RegisterUserRequest is the request body for registering a user
type RegisterUserRequest struct {
	Username string `json:"username"`
}
