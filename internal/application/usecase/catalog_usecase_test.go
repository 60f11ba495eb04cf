package usecase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/application/usecase"
	"github.com/jhoicas/kape-pos-api/internal/domain"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria que reproducen los contratos de los adaptadores Postgres
// ──────────────────────────────────────────────────────────────────────────────

type fakeOptionRepo struct {
	seq     int64
	options map[int64]*entity.Option
}

func newFakeOptionRepo() *fakeOptionRepo {
	return &fakeOptionRepo{options: make(map[int64]*entity.Option)}
}

func (f *fakeOptionRepo) Create(_ context.Context, o *entity.Option) error {
	f.seq++
	o.ID = f.seq
	cp := *o
	f.options[o.ID] = &cp
	return nil
}

func (f *fakeOptionRepo) List(_ context.Context) ([]*entity.Option, error) {
	var out []*entity.Option
	for _, o := range f.options {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeOptionRepo) Update(_ context.Context, o *entity.Option) (*entity.Option, error) {
	if _, ok := f.options[o.ID]; !ok {
		return nil, nil
	}
	cp := *o
	f.options[o.ID] = &cp
	res := cp
	return &res, nil
}

func (f *fakeOptionRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.options[id]; !ok {
		return false, nil
	}
	delete(f.options, id)
	return true, nil
}

type fakeCategoryRepo struct {
	seq        int64
	categories map[int64]*entity.Category
	addons     *fakeOptionRepo
	sizes      *fakeOptionRepo
}

func newFakeCategoryRepo(addons, sizes *fakeOptionRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[int64]*entity.Category),
		addons:     addons,
		sizes:      sizes,
	}
}

func (f *fakeCategoryRepo) Create(_ context.Context, name string) (*entity.Category, error) {
	f.seq++
	c := &entity.Category{ID: f.seq, Name: name}
	f.categories[c.ID] = c
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryRepo) Rename(_ context.Context, oldName, newName string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Name == oldName {
			c.Name = newName
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, name string) (int64, error) {
	for _, o := range f.addons.options {
		if o.Category == name {
			return 0, &domain.CategoryReferencedError{By: "addons"}
		}
	}
	for _, o := range f.sizes.options {
		if o.Category == name {
			return 0, &domain.CategoryReferencedError{By: "sizes"}
		}
	}
	for id, c := range f.categories {
		if c.Name == name {
			delete(f.categories, id)
			return id, nil
		}
	}
	return 0, domain.ErrNotFound
}

func price(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Integridad referencial de categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_BloqueadoMientrasHayaReferencias(t *testing.T) {
	ctx := context.Background()
	addons := newFakeOptionRepo()
	sizes := newFakeOptionRepo()
	categoryUC := usecase.NewCategoryUseCase(newFakeCategoryRepo(addons, sizes))
	addonUC := usecase.NewOptionUseCase(addons)

	_, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "coffee"})
	require.NoError(t, err)

	created, err := addonUC.Create(ctx, dto.OptionRequest{
		Name: "extra shot", Price: price(0.5), Category: "coffee",
	})
	require.NoError(t, err)

	// Con el addon apuntando a "coffee" el borrado debe fallar con conflicto.
	_, err = categoryUC.Delete(ctx, "coffee")
	var refErr *domain.CategoryReferencedError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "addons", refErr.By)

	// Al quitar la referencia, el mismo borrado procede.
	require.NoError(t, addonUC.Delete(ctx, created.ID))
	out, err := categoryUC.Delete(ctx, "coffee")
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
}

func TestCategoryDelete_BloqueadoPorSizes(t *testing.T) {
	ctx := context.Background()
	addons := newFakeOptionRepo()
	sizes := newFakeOptionRepo()
	categoryUC := usecase.NewCategoryUseCase(newFakeCategoryRepo(addons, sizes))
	sizeUC := usecase.NewOptionUseCase(sizes)

	_, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "tea"})
	require.NoError(t, err)
	_, err = sizeUC.Create(ctx, dto.OptionRequest{Name: "large", Price: price(1), Category: "tea"})
	require.NoError(t, err)

	_, err = categoryUC.Delete(ctx, "tea")
	var refErr *domain.CategoryReferencedError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "sizes", refErr.By)
}

func TestCategoryDelete_Inexistente(t *testing.T) {
	categoryUC := usecase.NewCategoryUseCase(
		newFakeCategoryRepo(newFakeOptionRepo(), newFakeOptionRepo()))
	_, err := categoryUC.Delete(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryRename_NoPropagaAReferencias(t *testing.T) {
	ctx := context.Background()
	addons := newFakeOptionRepo()
	sizes := newFakeOptionRepo()
	categoryUC := usecase.NewCategoryUseCase(newFakeCategoryRepo(addons, sizes))
	addonUC := usecase.NewOptionUseCase(addons)

	_, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "coffee"})
	require.NoError(t, err)
	_, err = addonUC.Create(ctx, dto.OptionRequest{Name: "extra shot", Price: price(0.5), Category: "coffee"})
	require.NoError(t, err)

	renamed, err := categoryUC.Rename(ctx, "coffee", dto.RenameCategoryRequest{NewName: "espresso"})
	require.NoError(t, err)
	assert.Equal(t, "espresso", renamed.Name)

	// La referencia blanda guardada en el addon queda con el nombre viejo.
	list, err := addonUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "coffee", list[0].Category)
}

func TestCategoryRename_NombreViejoInexistente(t *testing.T) {
	categoryUC := usecase.NewCategoryUseCase(
		newFakeCategoryRepo(newFakeOptionRepo(), newFakeOptionRepo()))
	_, err := categoryUC.Rename(context.Background(), "nope", dto.RenameCategoryRequest{NewName: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	categoryUC := usecase.NewCategoryUseCase(
		newFakeCategoryRepo(newFakeOptionRepo(), newFakeOptionRepo()))
	_, err := categoryUC.Create(context.Background(), dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de addons/sizes
// ──────────────────────────────────────────────────────────────────────────────

func TestOptionCreate_PrecioAusenteEsInvalido(t *testing.T) {
	uc := usecase.NewOptionUseCase(newFakeOptionRepo())
	_, err := uc.Create(context.Background(), dto.OptionRequest{Name: "x", Category: "coffee"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "price ausente es inválido aunque cero sea válido")
}

func TestOptionCreate_PrecioCeroEsValido(t *testing.T) {
	uc := usecase.NewOptionUseCase(newFakeOptionRepo())
	out, err := uc.Create(context.Background(), dto.OptionRequest{
		Name: "sin azúcar", Price: price(0), Category: "coffee",
	})
	require.NoError(t, err)
	assert.True(t, out.Price.IsZero())
}

func TestOptionCreate_PrecioNegativoEsInvalido(t *testing.T) {
	uc := usecase.NewOptionUseCase(newFakeOptionRepo())
	_, err := uc.Create(context.Background(), dto.OptionRequest{
		Name: "x", Price: price(-1), Category: "coffee",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOptionUpdate_IdInexistente(t *testing.T) {
	uc := usecase.NewOptionUseCase(newFakeOptionRepo())
	_, err := uc.Update(context.Background(), 99, dto.OptionRequest{
		Name: "large", Price: price(1), Category: "tea",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOptionDelete_IdInexistente(t *testing.T) {
	uc := usecase.NewOptionUseCase(newFakeOptionRepo())
	err := uc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
