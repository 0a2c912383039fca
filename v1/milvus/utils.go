package milvus

import (
	"context"
	"errors"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errBlank       = errors.New("cannot be blank")
	errNotPositive = errors.New("must be greater than zero")
)

// call builds the request for name and sends it.
func call(ctx context.Context, s Sender, name OperationName, params Params) (*Response, error) {
	req, err := NewRequest(name, params)
	if err != nil {
		return nil, err
	}
	return s.Send(ctx, req)
}

// requireNames checks that every named argument is non-empty. Keys are wire
// field names so errors point at what the server would have complained about.
func requireNames(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := validation.Validate(pairs[i+1], validation.Required); err != nil {
			return invalidArgument(pairs[i], err)
		}
	}
	return nil
}

// requireValue checks that a structured argument is present and non-empty.
func requireValue(field string, value any) error {
	if err := validation.Validate(value, validation.Required); err != nil {
		return invalidArgument(field, err)
	}
	return nil
}

// validateOptions runs the ozzo rules of an options struct.
func validateOptions(field string, v validation.Validatable) error {
	if isAbsent(v) {
		return nil
	}
	if err := v.Validate(); err != nil {
		return invalidArgument(field, err)
	}
	return nil
}

// idList normalizes a single primary key or a list of keys into a list.
func idList(id any) (any, error) {
	if isAbsent(id) {
		return nil, invalidArgument("id", errBlank)
	}
	rv := reflect.ValueOf(id)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return nil, invalidArgument("id", errBlank)
		}
		return id, nil
	default:
		return []any{id}, nil
	}
}
