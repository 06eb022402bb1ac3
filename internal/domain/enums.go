package domain

// ReviewGrade is the learner's self-assessed recall difficulty for a flashcard.
// Values are matched case-sensitively.
type ReviewGrade string

const (
	ReviewGradeAgain ReviewGrade = "AGAIN"
	ReviewGradeHard  ReviewGrade = "HARD"
	ReviewGradeGood  ReviewGrade = "GOOD"
	ReviewGradeEasy  ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}

// PMPDomain is the exam content outline domain a flashcard belongs to.
type PMPDomain string

const (
	PMPDomainPeople              PMPDomain = "PEOPLE"
	PMPDomainProcess             PMPDomain = "PROCESS"
	PMPDomainBusinessEnvironment PMPDomain = "BUSINESS_ENVIRONMENT"
)

func (d PMPDomain) String() string { return string(d) }

func (d PMPDomain) IsValid() bool {
	switch d {
	case PMPDomainPeople, PMPDomainProcess, PMPDomainBusinessEnvironment:
		return true
	}
	return false
}

// MasteryLevel is a reporting bucket derived from a review interval.
type MasteryLevel string

const (
	MasteryLearning  MasteryLevel = "learning"
	MasteryReviewing MasteryLevel = "reviewing"
	MasteryMastered  MasteryLevel = "mastered"
)

func (m MasteryLevel) String() string { return string(m) }

func (m MasteryLevel) IsValid() bool {
	switch m {
	case MasteryLearning, MasteryReviewing, MasteryMastered:
		return true
	}
	return false
}
