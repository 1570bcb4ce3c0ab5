/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"context"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestLookupByExactURN(t *testing.T) {
	target := Entity{URN: "urn:li:tag:pii", Type: "tag"}
	index := NewTargetIndex([]*Entity{&target})

	found, ok, err := index.Lookup(context.Background(),
		&Entity{URN: "urn:li:tag:pii", Type: "tag"})
	assert.NilError(t, err)
	assert.Check(t, ok)
	assert.Check(t, is.Equal(&target, found))
}

func TestLookupFallsBackToPlatformAndName(t *testing.T) {
	// target environment uses a different platform instance namespace
	target := Entity{
		URN:  "urn:li:dataset:(urn:li:dataPlatform:kafka,Clickstream.Events,PROD)",
		Type: "dataset",
	}
	index := NewTargetIndex([]*Entity{&target})

	source := Entity{
		URN:      "urn:li:dataset:(urn:li:dataPlatform:kafka,clickstream.events,DEV)",
		Type:     "dataset",
		Platform: "kafka",
		Name:     "clickstream.events",
	}
	found, ok, err := index.Lookup(context.Background(), &source)
	assert.NilError(t, err)
	assert.Check(t, ok)
	assert.Check(t, is.Equal(&target, found))
}

func TestLookupUnmatched(t *testing.T) {
	index := NewTargetIndex([]*Entity{
		{URN: "urn:li:tag:pii", Type: "tag"},
	})

	_, ok, err := index.Lookup(context.Background(),
		&Entity{URN: "urn:li:tag:phi", Type: "tag"})
	assert.NilError(t, err)
	assert.Check(t, !ok)
}

func TestLookupPlatformFromDatasetURN(t *testing.T) {
	// platform and name are parsed out of the dataset URN when the
	// export carries no explicit fields
	target := Entity{
		URN:  "urn:li:dataset:(urn:li:dataPlatform:snowflake,SALES.ORDERS,PROD)",
		Type: "dataset",
	}
	index := NewTargetIndex([]*Entity{&target})

	source := Entity{
		URN:  "urn:li:dataset:(urn:li:dataPlatform:snowflake,sales.orders,DEV)",
		Type: "dataset",
	}
	found, ok, err := index.Lookup(context.Background(), &source)
	assert.NilError(t, err)
	assert.Check(t, ok)
	assert.Check(t, is.Equal(&target, found))
}
