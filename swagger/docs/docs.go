package docs

// swagger:response
type Error struct {
	// The error message
	//in: body
	Message string
}

// swagger:response Accepted
type Accepted struct{}
