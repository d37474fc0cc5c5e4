package translate

import "testing"

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestBundlePassthrough(t *testing.T) {
	svc := newTestService(t)

	bundle := svc.Bundle("Tokyo")
	if bundle.En != "Tokyo" || bundle.ZhHans != "Tokyo" || bundle.ZhHant != "Tokyo" {
		t.Errorf("Bundle() = %+v, want Tokyo in all fields with the passthrough translator", bundle)
	}
}

func TestStoredBundle(t *testing.T) {
	svc := newTestService(t)

	t.Run("stored translation", func(t *testing.T) {
		bundle := svc.StoredBundle("Japan", `{"cn":"日本"}`, KeyCN)
		if bundle.En != "Japan" {
			t.Errorf("En = %q, want Japan", bundle.En)
		}
		if bundle.ZhHans != "日本" {
			t.Errorf("ZhHans = %q, want 日本", bundle.ZhHans)
		}
		if bundle.ZhHant == "" {
			t.Error("ZhHant is empty, want a converted name")
		}
	})

	t.Run("missing key falls back to name", func(t *testing.T) {
		bundle := svc.StoredBundle("Eastern Asia", `{"cn":"东亚"}`, KeyChinese)
		if bundle.ZhHans != "Eastern Asia" || bundle.ZhHant != "Eastern Asia" {
			t.Errorf("bundle = %+v, want English fallback for missing key", bundle)
		}
	})

	t.Run("malformed translations fall back to name", func(t *testing.T) {
		bundle := svc.StoredBundle("Asia", "not-json", KeyCN)
		if bundle.En != "Asia" || bundle.ZhHans != "Asia" || bundle.ZhHant != "Asia" {
			t.Errorf("bundle = %+v, want Asia in all fields", bundle)
		}
	})

	t.Run("empty translation value falls back", func(t *testing.T) {
		bundle := svc.StoredBundle("Asia", `{"cn":""}`, KeyCN)
		if bundle.ZhHans != "Asia" {
			t.Errorf("ZhHans = %q, want Asia", bundle.ZhHans)
		}
	})
}

type prefixTranslator struct{}

func (prefixTranslator) ToSimplifiedChinese(text string) (string, error) {
	return "zh:" + text, nil
}

func TestBundleUsesTranslator(t *testing.T) {
	svc, err := NewService(prefixTranslator{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	bundle := svc.Bundle("Kyoto")
	if bundle.En != "Kyoto" {
		t.Errorf("En = %q, want Kyoto", bundle.En)
	}
	if bundle.ZhHans != "zh:Kyoto" {
		t.Errorf("ZhHans = %q, want the translator output", bundle.ZhHans)
	}
}
