package wager

// TouchCount returns C(n, k), the number of k-number touches in a pool of n
// numbers. It is 0 when k > n or either argument is negative.
func TouchCount(n, k int) int64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	// Each partial product is C(n-k+i, i), so the division is exact.
	var c int64 = 1
	for i := 1; i <= k; i++ {
		c = c * int64(n-k+i) / int64(i)
	}
	return c
}

// ColumnTouchCount returns the number of k-number touches that take each
// number from a different column, given the size of every column. This is
// the elementary symmetric sum of degree k over sizes: the coefficient of x^k
// in Π(1 + size_i·x). It is 0 when fewer than k columns are given.
func ColumnTouchCount(sizes []int, k int) int64 {
	if k < 0 || len(sizes) < k {
		return 0
	}

	// coef[j] holds the degree-j sum over the columns seen so far.
	coef := make([]int64, k+1)
	coef[0] = 1
	for i, s := range sizes {
		if s <= 0 {
			continue
		}
		for j := min(i+1, k); j >= 1; j-- {
			coef[j] += coef[j-1] * int64(s)
		}
	}
	return coef[k]
}
