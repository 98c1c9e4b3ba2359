package operations

// swagger:parameters requestOperation
type _ struct {
	// in: path
	// required: true
	ID string `json:"id"`

	// in: path
	// required: true
	Operation string `json:"operation"`

	// Operation request body parameter
	// in: body
	// required: true
	Body OperationRequest
}

// swagger:parameters requestHostOperation
type _ struct {
	// in: path
	// required: true
	ID string `json:"id"`

	// in: path
	// required: true
	HostID string `json:"hostId"`

	// in: path
	// required: true
	Operation string `json:"operation"`

	// Operation request body parameter
	// in: body
	// required: true
	Body OperationRequest
}

// swagger:response OperationRequested
type _ struct {
	//in: body
	_ struct {
		OperationID string `json:"operationId"`
	}
}
