// Package agentpack provides ready made Gemini agents, each bound to one
// capability: web search, YouTube captions, file management, paper search,
// calculation, Hacker News, article reading, workspace scaffolding, code
// execution and Wikipedia lookup, plus a team orchestrator that routes
// requests between them.
//
// Factories are pure construction: they perform no I/O and accept a
// possibly nil client, so configuration problems surface when an agent is
// run, not when it is built.
package agentpack
