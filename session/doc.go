// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session drives one rating session: it holds the loaded books, the
pair awaiting a choice, and moves between three states on discrete events.

# States

  - Idle: fewer than two books loaded, nothing to compare
  - AwaitingChoice: a pair has been drawn and waits for a vote or skip
  - ProcessingVote: a vote is being written to the sheet

# Events

	s := session.New(store, elo.DefaultK, nil)
	n, err := s.Load(ctx)                 // read the sheet, draw a pair
	pair, err := s.Pair()                 // current pair
	pair, err = s.Skip()                  // draw another pair
	out, err := s.Vote(ctx, pair.ID, 0)   // pair.Books[0] wins

Vote requires the ID of the current pair, so a double-submitted or stale
vote is rejected with ErrStalePair instead of being counted twice.

# Sheet Writes

Vote updates the in-memory ratings first, then writes the sheet without
holding the session lock. A failed write comes back in Outcome.SyncErr and
does not undo the vote. Competing Vote, Skip or Load calls during the write
get ErrVoteInProgress.
*/
package session
