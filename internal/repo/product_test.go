package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhavlik/pricebook/internal/domain"
	"github.com/jhavlik/pricebook/internal/repo"
)

// productFixture returns a domain.Product with sensible defaults.
func productFixture() domain.Product {
	return domain.Product{
		ID:    uuid.New(),
		Name:  "Test Product " + uuid.NewString()[:8],
		Notes: "Test notes",
		Tags:  []string{"tag1", "tag2"},
	}
}

func TestProductRepo_CreateAndGet_RoundTrip(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))
	ctx := context.Background()

	input := productFixture()
	id, err := r.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.ID, id)

	got, err := r.GetByID(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Notes, got.Notes)
	assert.Equal(t, input.Tags, got.Tags, "tag order is preserved")
}

func TestProductRepo_Create_NilTags(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))
	ctx := context.Background()

	input := productFixture()
	input.Tags = nil

	id, err := r.Create(ctx, input)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Tags)
}

func TestProductRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_ListFiltered_NoFieldsMatchesAll(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, productFixture())
	require.NoError(t, err)
	_, err = r.Create(ctx, productFixture())
	require.NoError(t, err)

	all, err := r.List(ctx)
	require.NoError(t, err)
	filtered, err := r.ListFiltered(ctx, domain.ProductFilter{})
	require.NoError(t, err)

	assert.ElementsMatch(t, all, filtered)
}

func TestProductRepo_ListFiltered_ByTagMembership(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))
	ctx := context.Background()

	apple := productFixture()
	apple.Tags = []string{"fruit", "fresh"}
	milk := productFixture()
	milk.Tags = []string{"dairy"}
	fruitless := productFixture()
	fruitless.Tags = nil

	for _, p := range []domain.Product{apple, milk, fruitless} {
		_, err := r.Create(ctx, p)
		require.NoError(t, err)
	}

	tag := "fruit"
	got, err := r.ListFiltered(ctx, domain.ProductFilter{Tag: &tag})

	require.NoError(t, err)
	require.Len(t, got, 1, "membership test, not substring match")
	assert.Equal(t, apple.ID, got[0].ID)
}

func TestProductRepo_ListFiltered_ByNameExact(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))
	ctx := context.Background()

	target := productFixture()
	_, err := r.Create(ctx, target)
	require.NoError(t, err)
	_, err = r.Create(ctx, productFixture())
	require.NoError(t, err)

	got, err := r.ListFiltered(ctx, domain.ProductFilter{Name: &target.Name})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, target.ID, got[0].ID)
}

func TestProductRepo_FindByName_MultipleMatches(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))
	ctx := context.Background()

	name := "Duplicate " + uuid.NewString()[:8]
	p1, p2 := productFixture(), productFixture()
	p1.Name, p2.Name = name, name
	_, err := r.Create(ctx, p1)
	require.NoError(t, err)
	_, err = r.Create(ctx, p2)
	require.NoError(t, err)

	got, err := r.FindByName(ctx, name)

	require.NoError(t, err)
	assert.Len(t, got, 2, "all exact matches are returned; the service decides ambiguity")
}

func TestProductRepo_Update_Partial(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))
	ctx := context.Background()

	input := productFixture()
	_, err := r.Create(ctx, input)
	require.NoError(t, err)

	newName := "Updated Name"
	n, err := r.Update(ctx, input.ID, domain.ProductUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := r.GetByID(ctx, input.ID)
	require.NoError(t, err)
	assert.Equal(t, newName, got.Name)
	assert.Equal(t, input.Notes, got.Notes, "absent fields stay untouched")
	assert.Equal(t, input.Tags, got.Tags)
}

func TestProductRepo_Update_ZeroFields(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))
	ctx := context.Background()

	input := productFixture()
	_, err := r.Create(ctx, input)
	require.NoError(t, err)

	n, err := r.Update(ctx, input.ID, domain.ProductUpdate{})

	// Nothing supplied: the statement never reaches the database.
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	got, err := r.GetByID(ctx, input.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Name, got.Name)
}

func TestProductRepo_Update_Missing(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))

	name := "anything"
	n, err := r.Update(context.Background(), uuid.New(), domain.ProductUpdate{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestProductRepo_Delete(t *testing.T) {
	r := repo.NewProductRepo(beginTestTx(t))
	ctx := context.Background()

	input := productFixture()
	_, err := r.Create(ctx, input)
	require.NoError(t, err)

	n, err := r.Delete(ctx, input.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = r.Delete(ctx, input.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "second delete affects nothing")
}
