// Package headway finds the cheapest ways through a grid maze for an agent
// that has a heading: moving one cell forward is cheap, turning in place by
// 90° is expensive.
//
// 🚀 What is headway?
//
//	A small, dependency-light library that brings together:
//		• Grid parsing: text mazes with walls, a start and a goal
//		• Oriented states: (cell, heading) pairs and their three actions
//		• A* search: minimal cost plus every goal heading reached at it
//		• Path recovery: one path, all optimal paths, or just their cells
//
// ✨ Why a heading?
//
//   - Turns have a price, so the shortest route is not always the cheapest.
//   - Two routes with the same cost may arrive facing different ways;
//     both are reported.
//   - Cost defaults to 1 per move and 1000 per turn, and can be changed.
//
// Under the hood, everything is organized into four subpackages:
//
//	grid/   — maze parsing, cell kinds, walkability & connected regions
//	orient/ — headings, oriented states, actions & the successor graph
//	search/ — the A* engine, options, results & logging
//	paths/  — reconstruction, enumeration, cell unions & path checks
//
// Quick example:
//
//	#######
//	#....E#     S starts facing right. Walking along the bottom row and
//	#.###.#     turning left once costs 6 moves and 1 turn = 1006; the
//	#S....#     top route needs a second turn, so it is not optimal.
//	#######
//
//	g, _ := grid.Parse(strings.NewReader(maze))
//	res, _ := search.Search(g)
//	cost, _ := res.Cost()
//	cells := res.Cells().Size()
//
//	go get github.com/katalvlaran/headway
package headway
