package schedule

import "testing"

func TestPaginate_Basic(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Paginate(items, 1, 2)
	if len(page.Items) != 2 || page.Items[0] != 1 || page.Items[1] != 2 {
		t.Fatalf("expected [1 2], got %+v", page.Items)
	}
	if !page.HasNext || page.HasPrev {
		t.Fatalf("expected HasNext and no HasPrev, got %+v", page)
	}
	if page.Total != 5 {
		t.Fatalf("expected total 5, got %d", page.Total)
	}
}

func TestPaginate_LastPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Paginate(items, 3, 2)
	if len(page.Items) != 1 || page.Items[0] != 5 {
		t.Fatalf("expected [5], got %+v", page.Items)
	}
	if page.HasNext || !page.HasPrev {
		t.Fatalf("expected HasPrev and no HasNext, got %+v", page)
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	page := Paginate([]int{1, 2}, 10, 2)
	if len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %+v", page.Items)
	}
}

func TestPaginate_Defaults(t *testing.T) {
	items := make([]int, 30)
	page := Paginate(items, 0, 0)
	if page.Page != 1 || page.PageSize != 20 || len(page.Items) != 20 {
		t.Fatalf("expected defaults page=1 size=20, got %+v", page)
	}
}
