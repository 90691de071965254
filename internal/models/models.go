package models

import "encoding/json"

type ProposalStatus string

const (
	ProposalActive ProposalStatus = "active"
	ProposalClosed ProposalStatus = "closed"
)

// Proposal отдается клиенту как есть, нигде не хранится
type Proposal struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      ProposalStatus `json:"status"`
}

// VoteRequest — тело POST /api/vote. Поля не типизируются и не проверяются:
// зашифрованный голос непрозрачен, адрес может прийти в любом виде.
type VoteRequest struct {
	EncryptedVote json.RawMessage `json:"encryptedVote,omitempty"`
	VoterAddress  json.RawMessage `json:"voterAddress,omitempty"`
}

type VoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Results struct {
	EncryptedTally string `json:"encryptedTally"`
	VotingEnded    bool   `json:"votingEnded"`
}

// CurrentProposal is the only proposal the gateway knows about.
func CurrentProposal() Proposal {
	return Proposal{
		Title:       "Community Governance Proposal #1",
		Description: "Should we implement feature X in the next release?",
		Status:      ProposalActive,
	}
}

func VoteRecorded() VoteResponse {
	return VoteResponse{
		Success: true,
		Message: "Vote recorded successfully",
	}
}

// PendingResults is returned until tally decryption exists.
func PendingResults() Results {
	return Results{
		EncryptedTally: "encrypted_data_here",
		VotingEnded:    false,
	}
}
