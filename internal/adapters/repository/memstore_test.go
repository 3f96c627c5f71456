package repository_test

import (
	"context"
	"testing"

	"github.com/jmckinley/jumpstart/internal/adapters/repository"
	"github.com/jmckinley/jumpstart/internal/catalog"
	"github.com/jmckinley/jumpstart/internal/domain/profile"
	"github.com/jmckinley/jumpstart/internal/domain/tags"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemProfileStore(t *testing.T) {
	Convey("Given an empty profile store", t, func() {
		ctx := context.Background()
		store := repository.NewMemProfileStore()

		Convey("When storing a profile", func() {
			p := profile.Profile{ProjectID: "web-shop", Language: "TypeScript"}
			So(store.Put(ctx, p), ShouldBeNil)

			Convey("Then it can be read back", func() {
				got, err := store.Get(ctx, "web-shop")
				So(err, ShouldBeNil)
				So(got, ShouldResemble, p)
				So(store.Count(ctx), ShouldEqual, 1)
			})

			Convey("And a second put replaces it", func() {
				p.Framework = "Next.js"
				So(store.Put(ctx, p), ShouldBeNil)
				got, err := store.Get(ctx, "web-shop")
				So(err, ShouldBeNil)
				So(got.Framework, ShouldEqual, "Next.js")
				So(store.Count(ctx), ShouldEqual, 1)
			})

			Convey("And it can be deleted", func() {
				So(store.Delete(ctx, "web-shop"), ShouldBeNil)
				_, err := store.Get(ctx, "web-shop")
				So(err, ShouldWrap, repository.ErrNotFound)
			})
		})

		Convey("When the profile has no project id", func() {
			So(store.Put(ctx, profile.Profile{Language: "Go"}), ShouldWrap, repository.ErrMissingID)
		})

		Convey("When reading an unknown id", func() {
			_, err := store.Get(ctx, "ghost")
			So(err, ShouldWrap, repository.ErrNotFound)
		})

		Convey("When deleting an unknown id", func() {
			So(store.Delete(ctx, "ghost"), ShouldWrap, repository.ErrNotFound)
		})
	})
}

func TestMemItemStore(t *testing.T) {
	Convey("Given an empty item store", t, func() {
		ctx := context.Background()
		store := repository.NewMemItemStore()

		newItem := catalog.Item{
			Slug: "my-agent",
			Name: "My Agent",
			Tags: []tags.Tag{tags.Go},
		}

		Convey("When adding an item", func() {
			stored, err := store.Add(ctx, catalog.KindAgent, newItem)
			So(err, ShouldBeNil)
			So(stored.Slug, ShouldEqual, "my-agent")

			Convey("Then it lists under its kind only", func() {
				So(store.List(ctx, catalog.KindAgent), ShouldHaveLength, 1)
				So(store.List(ctx, catalog.KindTemplate), ShouldBeEmpty)
				So(store.Count(ctx), ShouldEqual, 1)
			})

			Convey("And the same slug is rejected once", func() {
				_, err := store.Add(ctx, catalog.KindAgent, newItem)
				So(err, ShouldWrap, repository.ErrDuplicateSlug)
			})

			Convey("And the same slug under another kind is fine", func() {
				_, err := store.Add(ctx, catalog.KindTemplate, newItem)
				So(err, ShouldBeNil)
			})

			Convey("And it can be removed", func() {
				So(store.Remove(ctx, catalog.KindAgent, "my-agent"), ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 0)
			})
		})

		Convey("When the item has no slug", func() {
			anon := newItem
			anon.Slug = ""
			stored, err := store.Add(ctx, catalog.KindAgent, anon)

			Convey("Then a slug is generated", func() {
				So(err, ShouldBeNil)
				So(stored.Slug, ShouldNotBeEmpty)
			})
		})

		Convey("When the item is invalid", func() {
			broken := newItem
			broken.Tags = nil
			_, err := store.Add(ctx, catalog.KindAgent, broken)
			So(err, ShouldWrap, catalog.ErrInvalidItem)
		})

		Convey("When removing an unknown slug", func() {
			So(store.Remove(ctx, catalog.KindAgent, "ghost"), ShouldWrap, repository.ErrNotFound)
		})

		Convey("When insertion order matters", func() {
			for _, slug := range []string{"c", "a", "b"} {
				it := newItem
				it.Slug = slug
				_, err := store.Add(ctx, catalog.KindTeam, it)
				So(err, ShouldBeNil)
			}

			Convey("Then List preserves it", func() {
				listed := store.List(ctx, catalog.KindTeam)
				So(listed[0].Slug, ShouldEqual, "c")
				So(listed[1].Slug, ShouldEqual, "a")
				So(listed[2].Slug, ShouldEqual, "b")
			})
		})
	})

	Convey("Given a bounded item store", t, func() {
		ctx := context.Background()
		store := repository.NewMemItemStore(repository.WithMaxItems(1))

		first := catalog.Item{Slug: "one", Name: "One", Tags: []tags.Tag{tags.Go}}
		second := catalog.Item{Slug: "two", Name: "Two", Tags: []tags.Tag{tags.Go}}

		Convey("When the bound is reached", func() {
			_, err := store.Add(ctx, catalog.KindAgent, first)
			So(err, ShouldBeNil)
			_, err = store.Add(ctx, catalog.KindAgent, second)
			So(err, ShouldWrap, repository.ErrStoreFull)

			Convey("Then other kinds still accept items", func() {
				_, err := store.Add(ctx, catalog.KindTeam, second)
				So(err, ShouldBeNil)
			})
		})
	})
}
