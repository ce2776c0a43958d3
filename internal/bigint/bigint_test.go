package bigint

import "testing"

// samples covers a representative spread of magnitudes: zero, ±1,
// ±small, ±10-digit, ±200-digit.
func samples(t *testing.T) []Int {
	t.Helper()
	raw := []string{
		"0", "1", "-1",
		"7", "-7", "42", "-42",
		"9999999999", "-9999999999", "1234567890",
		bigDigits(200), "-" + bigDigits(200),
	}
	out := make([]Int, 0, len(raw))
	for _, s := range raw {
		v, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		out = append(out, v)
	}
	return out
}

func bigDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('1' + (i % 9))
	}
	return string(b)
}

func TestRoundTrip(t *testing.T) {
	for _, a := range samples(t) {
		got, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", a.String(), err)
		}
		if Cmp(got, a) != 0 {
			t.Errorf("round trip mismatch: %s != %s", got, a)
		}
	}
}

func TestAdditiveIdentityAndInverse(t *testing.T) {
	for _, a := range samples(t) {
		if Cmp(Add(a, Zero), a) != 0 {
			t.Errorf("%s + 0 != %s", a, a)
		}
		if !Add(a, Neg(a)).IsZero() {
			t.Errorf("%s + (-%s) != 0", a, a)
		}
	}
}

func TestCommutativity(t *testing.T) {
	ss := samples(t)
	for _, a := range ss {
		for _, b := range ss {
			if Cmp(Add(a, b), Add(b, a)) != 0 {
				t.Errorf("%s + %s != %s + %s", a, b, b, a)
			}
			if Cmp(Mul(a, b), Mul(b, a)) != 0 {
				t.Errorf("%s * %s != %s * %s", a, b, b, a)
			}
		}
	}
}

func TestAssociativitySampled(t *testing.T) {
	ss := samples(t)
	for i := 0; i+2 < len(ss); i++ {
		a, b, c := ss[i], ss[i+1], ss[i+2]
		if Cmp(Add(Add(a, b), c), Add(a, Add(b, c))) != 0 {
			t.Errorf("(%s+%s)+%s != %s+(%s+%s)", a, b, c, a, b, c)
		}
		if Cmp(Mul(Mul(a, b), c), Mul(a, Mul(b, c))) != 0 {
			t.Errorf("(%s*%s)*%s != %s*(%s*%s)", a, b, c, a, b, c)
		}
	}
}

func TestMultiplicativeIdentityAndZero(t *testing.T) {
	one := FromInt64(1)
	for _, a := range samples(t) {
		if Cmp(Mul(a, one), a) != 0 {
			t.Errorf("%s * 1 != %s", a, a)
		}
		if !Mul(a, Zero).IsZero() {
			t.Errorf("%s * 0 != 0", a)
		}
	}
}

func TestDivisionIdentity(t *testing.T) {
	ss := samples(t)
	for _, a := range ss {
		for _, b := range ss {
			if b.IsZero() {
				continue
			}
			q, r, err := DivMod(a, b)
			if err != nil {
				t.Fatalf("DivMod(%s, %s): %v", a, b, err)
			}
			if got := Add(Mul(q, b), r); Cmp(got, a) != 0 {
				t.Errorf("%s != (%s//%s)*%s + %s == %s", a, a, b, b, r, got)
			}
			if !r.IsZero() && r.Sign != b.Sign {
				t.Errorf("sign(%s %% %s) = %d, want %d", a, b, r.Sign, b.Sign)
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	if _, _, err := DivMod(FromInt64(5), Zero); err == nil {
		t.Fatal("expected error dividing by zero")
	}
}

func TestTotalOrderTrichotomy(t *testing.T) {
	ss := samples(t)
	for _, a := range ss {
		for _, b := range ss {
			c1 := Cmp(a, b)
			c2 := Cmp(b, a)
			if c1 != -c2 {
				t.Errorf("Cmp(%s,%s)=%d but Cmp(%s,%s)=%d", a, b, c1, b, a, c2)
			}
			n := 0
			if c1 < 0 {
				n++
			}
			if c1 == 0 {
				n++
			}
			if c1 > 0 {
				n++
			}
			if n != 1 {
				t.Errorf("trichotomy violated for %s, %s", a, b)
			}
		}
	}
}

func TestMulVsRepeatedAddition(t *testing.T) {
	for _, a := range samples(t) {
		for b := int64(0); b <= 5; b++ {
			sum := Zero
			for i := int64(0); i < b; i++ {
				sum = Add(sum, a)
			}
			if got := Mul(a, FromInt64(b)); Cmp(got, sum) != 0 {
				t.Errorf("%s * %d != sum of %d copies (%s != %s)", a, b, b, got, sum)
			}
		}
	}
}

func TestExceedsInt64(t *testing.T) {
	// 10**40, realized by repeated multiplication as the interpreter does it.
	ten := FromInt64(10)
	pow := FromInt64(1)
	for i := 0; i < 40; i++ {
		pow = Mul(pow, ten)
	}
	got := Add(pow, FromInt64(1))
	want := "10000000000000000000000000000000000000001"
	if got.String() != want {
		t.Errorf("10**40+1 = %s, want %s", got, want)
	}
}

func TestFloorDivModExamples(t *testing.T) {
	q, r, err := DivMod(FromInt64(-7), FromInt64(2))
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "-4" {
		t.Errorf("-7 // 2 = %s, want -4", q)
	}
	if r.String() != "1" {
		t.Errorf("-7 %% 2 = %s, want 1", r)
	}
}

func TestParseEmptyAndSigns(t *testing.T) {
	for _, s := range []string{"", "0", "-0", "+0"} {
		v, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if !v.IsZero() {
			t.Errorf("Parse(%q) not zero", s)
		}
	}
}
