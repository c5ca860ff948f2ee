// seehuhn.de/go/planpdf - render project plan documents as PDF
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dijkstra finds shortest paths in the complete forward graph on the
// vertices 0, 1, ..., n.  This is the graph structure which occurs when
// choosing line breaks: vertex i is the position before word i and an edge
// (i, j) sets words i, ..., j-1 on one line.
package dijkstra

// Cost is the type of edge weights.
type Cost interface {
	~int | ~float64
}

// ShortestPath implements Dijkstra's algorithm
// https://en.wikipedia.org/wiki/Dijkstra%27s_algorithm
//
//	vertices: 0, 1, ..., n, start at 0, end at n
//	edges: (k, l) with 0 <= k < l <= n
//
// The function cost(k, l) must return non-negative weights.  The return
// values are the total cost and the vertices along the path, starting with 0
// and ending with n.
func ShortestPath[T Cost](cost func(k, l int) T, n int) (T, []int) {
	if n <= 0 {
		return 0, []int{0}
	}

	dist := make([]T, n)
	to := make([]int, n)
	done := make([]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = cost(i, n)
		to[i] = n
	}

	for {
		bestNode := -1
		var bestDist T
		for i := 0; i < n; i++ {
			if done[i] {
				continue
			}
			if bestNode < 0 || dist[i] < bestDist {
				bestNode = i
				bestDist = dist[i]
			}
		}
		if bestNode <= 0 {
			// vertex 0 is final, or nothing is left
			break
		}
		done[bestNode] = true

		for i := 0; i < bestNode; i++ {
			if done[i] {
				continue
			}
			alt := bestDist + cost(i, bestNode)
			if alt < dist[i] {
				dist[i] = alt
				to[i] = bestNode
			}
		}
	}

	res := []int{0}
	pos := 0
	for pos < n {
		pos = to[pos]
		res = append(res, pos)
	}
	return dist[0], res
}
