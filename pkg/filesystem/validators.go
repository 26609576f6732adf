package filesystem

// ListQuery contains query parameters for the index and file list endpoints.
// The path is resolved separately by pathreq so that a malformed one degrades
// to the root instead of failing the request.
type ListQuery struct {
	Sorting string `query:"sorting" json:"sorting,omitempty" mod:"trim" validate:"omitempty,sortspec"`
}
