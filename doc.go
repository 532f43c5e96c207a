// Package resample is your in-memory toolkit for building, inspecting,
// and evaluating reproducible resampling plans — from bootstrap draws to
// rolling-origin time-series backtests.
//
// 🚀 What is resample?
//
//	A modern, deterministic, dependency-light library that brings together:
//		• Dataset handles: row-addressable tables with optional stratification
//		• Splits: immutable analysis/assessment partitions with lazy views
//		• Strategies: bootstrap, V-fold CV (with repeats), Monte-Carlo CV,
//		  rolling-origin for ordered series
//		• Evaluation: an order-preserving, parallelizable map driver plus
//		  descriptive summaries of per-split metrics
//
// ✨ Why choose resample?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – eager validation, immutable plans, in-code docs
//   - Reproducible – same seed + same configuration ⇒ identical plans
//   - Extensible – bring your own per-split function (fit, score, predict…)
//
// Under the hood, everything is organized under four subpackages:
//
//	dataset/ — Table handle, Frame, Universe (row identity + strata)
//	split/   — Split, Label, lazy View, generic Materialize
//	plan/    — the resampling strategies and the Plan they produce
//	eval/    — Map/Collect drivers and gonum-backed Summaries
//
// Quick ASCII example (V-fold, v=4, one repeat):
//
//	fold1:  ■■■■□□□□□□□□□□□□
//	fold2:  □□□□■■■■□□□□□□□□
//	fold3:  □□□□□□□□■■■■□□□□
//	fold4:  □□□□□□□□□□□□■■■■
//
//	■ assessment, □ analysis — every row is assessed exactly once per repeat.
//
// Dive into the package docs for full examples, determinism notes,
// and the exact remainder/stratification conventions.
//
//	go get github.com/katalvlaran/resample
package resample
