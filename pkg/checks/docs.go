package checks

// swagger:parameters selectChecks
type _ struct {
	// in: path
	// required: true
	ID string `json:"id"`

	// Select checks request body parameter
	// in: body
	// required: true
	Body SelectChecksRequest
}

// swagger:parameters requestChecksExecution
type _ struct {
	// in: path
	// required: true
	ID string `json:"id"`
}

// swagger:response ExecutionRequested
type _ struct {
	//in: body
	_ struct {
		ExecutionID string `json:"executionId"`
	}
}
