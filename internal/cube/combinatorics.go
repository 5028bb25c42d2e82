package cube

// Binomial returns C(n, k), the number of k-subsets of an n-set,
// or 0 if k > n. Exact for the small n (<= 12) the coordinate
// functions ever call this with.
func Binomial(n, k int) int {
	if k > n || k < 0 {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// CombinationRank computes the co-lexicographic rank of the subset
// named by indices, a k-element subset of {0, ..., n-1}, among all
// C(n, k) such subsets. indices need not be pre-sorted.
//
// rank(S) = sum_{i=0}^{k-1} C(s_i, i+1), where s_0 < s_1 < ... < s_{k-1}
// are the elements of S in increasing order.
func CombinationRank(indices []int) int {
	sorted := append([]int(nil), indices...)
	insertionSort(sorted)

	rank := 0
	for i, s := range sorted {
		rank += Binomial(s, i+1)
	}
	return rank
}

func insertionSort(xs []int) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

// PermutationRank computes the lexicographic rank of the permutation
// pi (a permutation of {0, ..., n-1}) among all n! permutations, by
// the standard factorial-base algorithm: at position i, count how many
// of the remaining unused values are less than pi[i], and weight that
// count by (n-1-i)!.
func PermutationRank(pi []int) int {
	n := len(pi)
	used := make([]bool, n)
	factorial := 1
	for i := 2; i < n; i++ {
		factorial *= i
	}

	rank := 0
	for i := 0; i < n; i++ {
		less := 0
		for v := 0; v < pi[i]; v++ {
			if !used[v] {
				less++
			}
		}
		if n-1-i > 0 {
			rank += less * factorial
			factorial /= n - 1 - i
		}
		used[pi[i]] = true
	}
	return rank
}

// PermutationParity returns 0 if pi has an even number of inversions,
// 1 if odd.
func PermutationParity(pi []int) int {
	inversions := 0
	for i := 0; i < len(pi); i++ {
		for j := i + 1; j < len(pi); j++ {
			if pi[i] > pi[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}
