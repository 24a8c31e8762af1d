package retail

import "testing"

func TestAllocationStoresForAliasCities(t *testing.T) {
	got := AllocationStoresFor("Fort Worth, TX")
	if len(got) == 0 {
		t.Fatal("no curated stores for Fort Worth")
	}
	if got[0].Name != "Goody Goody Liquor" {
		t.Fatalf("first Dallas-area store = %q", got[0].Name)
	}

	if stores := AllocationStoresFor("louisville"); len(stores) != 3 {
		t.Fatalf("got %d Louisville stores, want 3", len(stores))
	}
}

func TestAllocationStoresForUnknownCity(t *testing.T) {
	if got := AllocationStoresFor("Boise, ID"); got != nil {
		t.Fatalf("got %+v, want nil for uncovered city", got)
	}
}

func TestCigarRetailersFor(t *testing.T) {
	got := CigarRetailersFor("Philadelphia, PA")
	if len(got) != 2 || got[0].Name != "Holt's Cigar Company" {
		t.Fatalf("unexpected Philadelphia retailers: %+v", got)
	}

	if stores := CigarRetailersFor("Tulsa, OK"); stores != nil {
		t.Fatalf("got %+v, want nil", stores)
	}
}
