package mcp

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/facet/internal/errors"
)

// decode maps tool arguments onto T. Any mismatch is an INVALID_REQUEST
// naming the offending argument when the decoder can tell.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var result T
	b, err := json.Marshal(req.GetArguments())
	if err != nil {
		return result, errors.NewInvalidRequest("arguments are not valid JSON")
	}
	if err := json.Unmarshal(b, &result); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && typeErr.Field != "" {
			return result, errors.NewInvalidRequest(fmt.Sprintf("argument %q must be %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value))
		}
		return result, errors.NewInvalidRequest("malformed arguments: " + err.Error())
	}
	return result, nil
}
