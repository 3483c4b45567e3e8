package reconciler_test

import (
	"context"
	"errors"

	"code.cloudfoundry.org/tenantrouter/models"
	"code.cloudfoundry.org/tenantrouter/reconciler"
	"code.cloudfoundry.org/tenantrouter/reconciler/fakes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reconciling", func() {
	var (
		fakeRouteStore   *fakes.RouteStore
		fakeSnapshotRepo *fakes.SnapshotRepo
		rec              *reconciler.Reconciler
		ctx              context.Context
	)

	BeforeEach(func() {
		fakeRouteStore = &fakes.RouteStore{}
		fakeRouteStore.ListTenantRoutesReturns([]models.TenantRoute{
			{
				TenantID:        "tenant-a",
				ProductTarget:   "http://product-a:8080",
				InventoryTarget: "http://inventory-a:8080",
				OrderTarget:     "http://order-a:8080",
			},
			{
				TenantID:      "tenant-b",
				ProductTarget: "http://product-b:8080",
			},
		}, nil)

		fakeSnapshotRepo = &fakes.SnapshotRepo{}
		fakeSnapshotRepo.PublishReturns(true)

		rec = &reconciler.Reconciler{
			RouteStore:   fakeRouteStore,
			SnapshotRepo: fakeSnapshotRepo,
		}
		ctx = context.Background()
	})

	It("fetches the full table in one call and publishes a snapshot", func() {
		version, err := rec.Reconcile(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(Equal(uint64(1)))

		Expect(fakeRouteStore.ListTenantRoutesCallCount()).To(Equal(1))
		Expect(fakeRouteStore.ListTenantRoutesArgsForCall(0)).To(Equal(ctx))

		Expect(fakeSnapshotRepo.PublishCallCount()).To(Equal(1))
		snapshot := fakeSnapshotRepo.PublishArgsForCall(0)
		Expect(snapshot.Version).To(Equal(uint64(1)))
		Expect(snapshot.Routes).To(HaveLen(2))
		Expect(snapshot.Routes["tenant-a"].ProductTarget).To(Equal("http://product-a:8080"))
		Expect(snapshot.Routes["tenant-b"].ProductTarget).To(Equal("http://product-b:8080"))
	})

	It("assigns increasing versions to successive snapshots", func() {
		for i := 1; i <= 3; i++ {
			version, err := rec.Reconcile(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal(uint64(i)))
		}

		Expect(fakeSnapshotRepo.PublishCallCount()).To(Equal(3))
		Expect(fakeSnapshotRepo.PublishArgsForCall(2).Version).To(Equal(uint64(3)))
	})

	It("publishes identical route content while the table is unchanged", func() {
		_, err := rec.Reconcile(ctx)
		Expect(err).NotTo(HaveOccurred())
		_, err = rec.Reconcile(ctx)
		Expect(err).NotTo(HaveOccurred())

		first := fakeSnapshotRepo.PublishArgsForCall(0)
		second := fakeSnapshotRepo.PublishArgsForCall(1)
		Expect(second.Routes).To(Equal(first.Routes))
		Expect(second.Version).To(BeNumerically(">", first.Version))
	})

	Context("when fetching the table fails", func() {
		BeforeEach(func() {
			fakeRouteStore.ListTenantRoutesReturns(nil, errors.New("db is down"))
		})

		It("returns the error and publishes nothing", func() {
			_, err := rec.Reconcile(ctx)
			Expect(err).To(MatchError("list tenant routes: db is down"))
			Expect(fakeSnapshotRepo.PublishCallCount()).To(Equal(0))
		})
	})

	Context("when a row has an empty tenant id", func() {
		BeforeEach(func() {
			fakeRouteStore.ListTenantRoutesReturns([]models.TenantRoute{
				{TenantID: "", ProductTarget: "http://orphan:8080"},
				{TenantID: "tenant-a", ProductTarget: "http://product-a:8080"},
			}, nil)
		})

		It("drops the row and keeps the rest", func() {
			_, err := rec.Reconcile(ctx)
			Expect(err).NotTo(HaveOccurred())

			snapshot := fakeSnapshotRepo.PublishArgsForCall(0)
			Expect(snapshot.Routes).To(HaveLen(1))
			Expect(snapshot.Routes).To(HaveKey("tenant-a"))
		})
	})

	Context("when a row has a malformed target URI", func() {
		BeforeEach(func() {
			fakeRouteStore.ListTenantRoutesReturns([]models.TenantRoute{
				{
					TenantID:        "tenant-a",
					ProductTarget:   "product-a:8080",
					InventoryTarget: "http://inventory-a:8080",
				},
			}, nil)
		})

		It("drops the malformed target and keeps the rest of the row", func() {
			_, err := rec.Reconcile(ctx)
			Expect(err).NotTo(HaveOccurred())

			snapshot := fakeSnapshotRepo.PublishArgsForCall(0)
			route, ok := snapshot.Lookup("tenant-a")
			Expect(ok).To(BeTrue())
			Expect(route.ProductTarget).To(Equal(""))
			Expect(route.InventoryTarget).To(Equal("http://inventory-a:8080"))
		})
	})

	Context("when two rows share a tenant id", func() {
		BeforeEach(func() {
			fakeRouteStore.ListTenantRoutesReturns([]models.TenantRoute{
				{TenantID: "tenant-a", ProductTarget: "http://old:8080"},
				{TenantID: "tenant-a", ProductTarget: "http://new:8080"},
			}, nil)
		})

		It("keeps the last row", func() {
			_, err := rec.Reconcile(ctx)
			Expect(err).NotTo(HaveOccurred())

			snapshot := fakeSnapshotRepo.PublishArgsForCall(0)
			Expect(snapshot.Routes).To(HaveLen(1))
			Expect(snapshot.Routes["tenant-a"].ProductTarget).To(Equal("http://new:8080"))
		})
	})

	Context("when the snapshot loses the publish race", func() {
		BeforeEach(func() {
			fakeSnapshotRepo.PublishReturns(false)
			fakeSnapshotRepo.VersionReturns(9)
		})

		It("reports the winning version without an error", func() {
			version, err := rec.Reconcile(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal(uint64(9)))
		})
	})

	Context("when a newer reconcile completes during the fetch", func() {
		It("discards the older snapshot deterministically", func() {
			repo := &models.SnapshotRepo{}
			rec = &reconciler.Reconciler{
				RouteStore:   fakeRouteStore,
				SnapshotRepo: repo,
			}

			first := true
			fakeRouteStore.ListTenantRoutesStub = func(ctx context.Context) ([]models.TenantRoute, error) {
				if first {
					first = false
					version, err := rec.Reconcile(ctx)
					Expect(err).NotTo(HaveOccurred())
					Expect(version).To(Equal(uint64(2)))
					return []models.TenantRoute{
						{TenantID: "stale-tenant", ProductTarget: "http://stale:8080"},
					}, nil
				}
				return []models.TenantRoute{
					{TenantID: "fresh-tenant", ProductTarget: "http://fresh:8080"},
				}, nil
			}

			version, err := rec.Reconcile(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal(uint64(2)))

			snapshot, ok := repo.Get()
			Expect(ok).To(BeTrue())
			Expect(snapshot.Version).To(Equal(uint64(2)))
			Expect(snapshot.Routes).To(HaveKey("fresh-tenant"))
			Expect(snapshot.Routes).NotTo(HaveKey("stale-tenant"))
		})
	})
})
