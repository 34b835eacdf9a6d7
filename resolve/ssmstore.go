package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// SSMAPI is the subset of the AWS Systems Manager client the store
// uses. It is satisfied by *ssm.Client.
type SSMAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
	GetParametersByPath(ctx context.Context, in *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// SSMStore reads parameters from AWS Systems Manager Parameter Store.
// Parameter paths map one-to-one onto SSM parameter names.
type SSMStore struct {
	client SSMAPI
}

// NewSSMStore creates a store backed by an SSM client.
func NewSSMStore(client SSMAPI) *SSMStore {
	return &SSMStore{client: client}
}

// Get returns the parameter at the given path, decrypting SecureString
// values.
func (s *SSMStore) Get(ctx context.Context, path string) (Parameter, error) {
	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(path),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return Parameter{}, mapSSMError(path, err)
	}
	return Parameter{
		Path:    aws.ToString(out.Parameter.Name),
		Value:   aws.ToString(out.Parameter.Value),
		Version: out.Parameter.Version,
	}, nil
}

// List returns every parameter under the given hierarchical prefix,
// following pagination.
func (s *SSMStore) List(ctx context.Context, prefix string) ([]Parameter, error) {
	var parameters []Parameter
	var nextToken *string

	for {
		out, err := s.client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
			Path:           aws.String(prefix),
			Recursive:      aws.Bool(true),
			WithDecryption: aws.Bool(true),
			NextToken:      nextToken,
		})
		if err != nil {
			return nil, mapSSMError(prefix, err)
		}

		for _, p := range out.Parameters {
			parameters = append(parameters, Parameter{
				Path:    aws.ToString(p.Name),
				Value:   aws.ToString(p.Value),
				Version: p.Version,
			})
		}

		nextToken = out.NextToken
		if nextToken == nil {
			return parameters, nil
		}
	}
}

func mapSSMError(path string, err error) error {
	var notFound *types.ParameterNotFound
	if errors.As(err, &notFound) {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	var internal *types.InternalServerError
	if errors.As(err, &internal) {
		return fmt.Errorf("%s: %w", path, ErrStoreUnavailable)
	}
	return fmt.Errorf("ssm: %s: %w", path, err)
}
