package calculator

import (
	"testing"

	"hipphone/internal/model"
)

func TestComputePrice(t *testing.T) {
	t.Parallel()

	r := model.Record{ListPrice: 1000000, Subsidy: 500000}
	q := ComputePrice(r, 0)
	if q.BasePrice != 500000 || q.FinalPrice != 500000 {
		t.Fatalf("unexpected quote: %+v", q)
	}

	q = ComputePrice(r, 120000)
	if q.BasePrice != 500000 || q.FinalPrice != 380000 || q.StoreDiscount != 120000 {
		t.Fatalf("unexpected quote with discount: %+v", q)
	}
}

func TestComputePrice_ClampsAtZero(t *testing.T) {
	t.Parallel()

	q := ComputePrice(model.Record{ListPrice: 300000, Subsidy: 500000}, 0)
	if q.BasePrice != 0 || q.FinalPrice != 0 {
		t.Fatalf("subsidy above list price: %+v", q)
	}

	q = ComputePrice(model.Record{ListPrice: 300000, Subsidy: 100000}, 900000)
	if q.FinalPrice != 0 {
		t.Fatalf("discount above base price: %+v", q)
	}
}

func TestComputePrice_NegativeDiscountClamped(t *testing.T) {
	t.Parallel()

	q := ComputePrice(model.Record{ListPrice: 300000, Subsidy: 100000}, -50000)
	if q.StoreDiscount != 0 || q.FinalPrice != 200000 {
		t.Fatalf("negative discount must be treated as 0: %+v", q)
	}
}

func TestComputePrice_PureAndMonotonic(t *testing.T) {
	t.Parallel()

	records := []model.Record{
		{ListPrice: 0, Subsidy: 0},
		{ListPrice: 1155000, Subsidy: 500000},
		{ListPrice: 990000, Subsidy: 990000},
		{ListPrice: 100, Subsidy: 1000},
	}
	discounts := []int64{-1, 0, 1000, 500000, 2000000}

	for _, r := range records {
		for _, d := range discounts {
			a := ComputePrice(r, d)
			b := ComputePrice(r, d)
			if a != b {
				t.Fatalf("ComputePrice not deterministic: %+v vs %+v", a, b)
			}
			if !(a.FinalPrice <= a.BasePrice && a.BasePrice <= r.ListPrice) {
				t.Fatalf("ordering violated for %+v discount=%d: %+v", r, d, a)
			}
			if a.FinalPrice < 0 || a.BasePrice < 0 {
				t.Fatalf("negative price for %+v discount=%d: %+v", r, d, a)
			}
		}
	}
}

func TestValidateRecord(t *testing.T) {
	t.Parallel()

	if got := ValidateRecord(model.Record{ListPrice: 100, Subsidy: 10}); len(got) != 0 {
		t.Fatalf("expected no warnings, got %v", got)
	}
	if got := ValidateRecord(model.Record{ListPrice: 0, Subsidy: 10}); len(got) != 2 {
		t.Fatalf("expected 2 warnings, got %v", got)
	}
}

func TestMemo(t *testing.T) {
	t.Parallel()

	r := model.Record{Carrier: "SKT", Model: "Galaxy S24", Plan: "5GX 프라임", ListPrice: 1155000, Subsidy: 500000}
	q := ComputePrice(r, 50000)

	want := "SKT | Galaxy S24 | 5GX 프라임\n출고가 1,155,000원 - 공시 500,000원 - 매장할인 50,000원\n= 최종가 605,000원"
	if got := Memo(r, q); got != want {
		t.Fatalf("memo mismatch:\n got: %s\nwant: %s", got, want)
	}
}
