package advisory

import "context"

// Service answers free-text tax questions.
//
//go:generate mockgen -package mockadvisory -source=interface.go -destination=mock/mockadvisory.go *
type Service interface {
	// Ask forwards question to the completion API using credential, or the
	// configured default credential when credential is blank.
	Ask(ctx context.Context, credential, question string) (string, error)
}
