package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number adalah float64 yang toleran saat decode: null, kosong, atau teks bukan angka menjadi 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		*n = Number(finite(v))
	case string:
		*n = Number(ParseFloat(v))
	}
	return nil
}

// Int memotong nilai ke bilangan bulat (untuk field paket).
func (n Number) Int() int {
	return int(float64(n))
}

// ParseFloat mengurai teks angka, nilai tak valid menjadi 0.
func ParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return finite(v)
}

// ParseInt mengurai teks bilangan bulat. Teks desimal "12.7" dibaca 12.
func ParseInt(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return int(ParseFloat(s))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
