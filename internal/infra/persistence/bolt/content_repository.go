package bolt

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/domain/repository"
)

type categoryRepository struct {
	store store
}

// NewCategoryRepository returns the homepage tiles bucket.
func NewCategoryRepository(db *bbolt.DB) repository.CategoryRepository {
	return &categoryRepository{store: store{db: db}}
}

func (r *categoryRepository) List(_ context.Context) ([]*entity.CategoryItem, error) {
	var items []*entity.CategoryItem
	err := r.store.view(func(tx *bbolt.Tx) error {
		var err error
		items, err = listJSON[entity.CategoryItem](tx.Bucket(bucketCategories))

		return err
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(items, func(a, b *entity.CategoryItem) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return items, nil
}

func (r *categoryRepository) Create(_ context.Context, category *entity.CategoryItem) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		return putJSON(tx.Bucket(bucketCategories), idKey(category.ID), category)
	})
}

func (r *categoryRepository) Update(_ context.Context, category *entity.CategoryItem) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCategories)

		var prev entity.CategoryItem
		found, err := getJSON(b, idKey(category.ID), &prev)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrCategoryNotFound
		}

		next := *category
		next.CreatedAt = prev.CreatedAt

		return putJSON(b, idKey(category.ID), &next)
	})
}

func (r *categoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCategories)
		if b.Get(idKey(id)) == nil {
			return repository.ErrCategoryNotFound
		}

		return b.Delete(idKey(id))
	})
}

type slideRepository struct {
	store store
}

// NewSlideRepository returns the homepage slides bucket.
func NewSlideRepository(db *bbolt.DB) repository.SlideRepository {
	return &slideRepository{store: store{db: db}}
}

func (r *slideRepository) List(_ context.Context) ([]*entity.Slide, error) {
	var slides []*entity.Slide
	err := r.store.view(func(tx *bbolt.Tx) error {
		var err error
		slides, err = listJSON[entity.Slide](tx.Bucket(bucketSlides))

		return err
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(slides, func(a, b *entity.Slide) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return slides, nil
}

func (r *slideRepository) Create(_ context.Context, slide *entity.Slide) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		return putJSON(tx.Bucket(bucketSlides), idKey(slide.ID), slide)
	})
}

func (r *slideRepository) Update(_ context.Context, slide *entity.Slide) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSlides)

		var prev entity.Slide
		found, err := getJSON(b, idKey(slide.ID), &prev)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrSlideNotFound
		}

		next := *slide
		next.CreatedAt = prev.CreatedAt

		return putJSON(b, idKey(slide.ID), &next)
	})
}

func (r *slideRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSlides)
		if b.Get(idKey(id)) == nil {
			return repository.ErrSlideNotFound
		}

		return b.Delete(idKey(id))
	})
}
