package speech

import "context"

type Repository interface {
	ListSpeeches(context context.Context, f Filter, limit, offset int) ([]*Speech, int, error)
	GetSpeech(context context.Context, id int) (*Speech, error)

	ListClusters(context context.Context, limit, offset int) ([]*Cluster, int, error)
	GetCluster(context context.Context, id int) (*Cluster, error)

	CreateSpeech(context context.Context, s *Speech) error

	// GetOrCreateCluster inserts the cluster unless its id already exists.
	// The returned flag reports whether a row was created.
	GetOrCreateCluster(context context.Context, c *Cluster) (bool, error)
	SetClusterSeq(context context.Context, id, seq int) error

	AttachRole(context context.Context, role Role, speechID, instanceID int) error
	CreateTag(context context.Context, t *Tag) error
}
