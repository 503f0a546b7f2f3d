package datasource

import (
	"time"

	"legali_app_go/models"
)

type seedUser struct {
	models.User
	password string
}

var seedUsers = []seedUser{
	{
		User: models.User{
			ID:        "lawyer-1",
			Email:     "lawyers@legali.io",
			FirstName: "Legal",
			LastName:  "Expert",
			CityID:    intPtr(1),
			Role:      "lawyer",
		},
		password: "lawyer321",
	},
	{
		User: models.User{
			ID:        "user-1",
			Email:     "user@legali.io",
			FirstName: "John",
			LastName:  "Doe",
			CityID:    intPtr(1),
			Role:      "user",
		},
		password: "user321",
	},
}

func intPtr(v int) *int { return &v }

var seedTime = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

func seedLawyers() []models.Lawyer {
	return []models.Lawyer{
		{
			ID: "1", Name: "Sarah Chen", Email: "sarah.chen@legali.io",
			ProfileImage: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=400",
			Credentials:  []string{"J.D., Harvard Law School", "Licensed in New York and California"},
			Jurisdiction: []string{"New York", "California"},
			Specialties:  []string{"Corporate Law", "Mergers & Acquisitions", "Securities"},
			Experience:   15, Rating: 4.9, ReviewCount: 127, HourlyRate: 450,
			Availability: models.AvailabilityAvailable,
			Languages:    []string{"English", "Mandarin"},
			Bio:          "Corporate attorney advising startups and public companies on financing, governance and acquisitions.",
			CaseResults: []models.CaseResult{
				{ID: "cr-1", CaseType: "Mergers & Acquisitions", Outcome: "Closed", Description: "Led a $120M cross-border acquisition", Year: 2023},
			},
			PricingPackages: []models.PricingPackage{
				{ID: "pkg-1-1", Name: "Initial Consultation", Description: "One hour strategy session", Price: 450, Duration: "1 hour", Features: []string{"Case assessment", "Next steps plan"}},
				{ID: "pkg-1-2", Name: "Contract Review", Description: "Review of up to 20 pages", Price: 1200, Duration: "3 days", Features: []string{"Redline", "Risk memo"}},
			},
			VerificationStatus: models.VerificationVerified,
			CreatedAt:          seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "2", Name: "Michael Rodriguez", Email: "michael.rodriguez@legali.io",
			ProfileImage: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=400",
			Credentials:  []string{"J.D., Stanford Law School"},
			Jurisdiction: []string{"California", "Nevada"},
			Specialties:  []string{"Personal Injury", "Medical Malpractice"},
			Experience:   12, Rating: 4.8, ReviewCount: 98, HourlyRate: 350,
			Availability: models.AvailabilityAvailable,
			Languages:    []string{"English", "Spanish"},
			Bio:          "Trial lawyer representing injured clients against insurers and hospital systems.",
			CaseResults: []models.CaseResult{
				{ID: "cr-2", CaseType: "Personal Injury", Outcome: "Settled", Description: "$2.4M settlement for a trucking accident victim", Year: 2022},
			},
			PricingPackages: []models.PricingPackage{
				{ID: "pkg-2-1", Name: "Free Case Evaluation", Description: "30 minute review of your claim", Price: 0, Duration: "consultation", Features: []string{"Liability review"}},
			},
			VerificationStatus: models.VerificationVerified,
			CreatedAt:          seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "3", Name: "Emily Johnson", Email: "emily.johnson@legali.io",
			Credentials:  []string{"J.D., University of Texas School of Law"},
			Jurisdiction: []string{"Texas"},
			Specialties:  []string{"Family Law", "Divorce", "Child Custody"},
			Experience:   8, Rating: 4.6, ReviewCount: 54, HourlyRate: 250,
			Availability: models.AvailabilityBusy,
			Languages:    []string{"English"},
			Bio:          "Family lawyer focused on negotiated divorces and custody arrangements.",
			PricingPackages: []models.PricingPackage{
				{ID: "pkg-3-1", Name: "Divorce Consultation", Description: "One hour session", Price: 250, Duration: "1 hour", Features: []string{"Asset review", "Custody options"}},
			},
			VerificationStatus: models.VerificationVerified,
			CreatedAt:          seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "4", Name: "David Kim", Email: "david.kim@legali.io",
			Credentials:  []string{"J.D., Columbia Law School", "Registered Patent Attorney"},
			Jurisdiction: []string{"New York", "New Jersey"},
			Specialties:  []string{"Intellectual Property", "Patent Law"},
			Experience:   10, Rating: 4.7, ReviewCount: 76, HourlyRate: 400,
			Availability: models.AvailabilityAvailable,
			Languages:    []string{"English", "Korean"},
			Bio:          "Patent attorney for software and hardware companies, from prosecution to litigation.",
			VerificationStatus: models.VerificationVerified,
			CreatedAt:          seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "5", Name: "Budi Santoso", Email: "budi.santoso@legali.io",
			Credentials:  []string{"S.H., Universitas Indonesia", "PERADI member"},
			Jurisdiction: []string{"Jakarta", "Surabaya"},
			Specialties:  []string{"Employment Law", "Corporate Law"},
			Experience:   14, Rating: 4.8, ReviewCount: 88, HourlyRate: 150,
			Availability: models.AvailabilityAvailable,
			Languages:    []string{"Indonesian", "English", "Javanese"},
			Bio:          "Employment and corporate counsel for Indonesian and foreign-owned businesses.",
			VerificationStatus: models.VerificationVerified,
			CreatedAt:          seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "6", Name: "Amanda Foster", Email: "amanda.foster@legali.io",
			Credentials:  []string{"J.D., Georgetown University Law Center"},
			Jurisdiction: []string{"Washington DC", "Virginia"},
			Specialties:  []string{"Criminal Defense", "White Collar Crime"},
			Experience:   18, Rating: 4.9, ReviewCount: 143, HourlyRate: 500,
			Availability: models.AvailabilityOffline,
			Languages:    []string{"English", "French"},
			Bio:          "Former federal prosecutor defending individuals in fraud and regulatory investigations.",
			VerificationStatus: models.VerificationVerified,
			CreatedAt:          seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "7", Name: "Siti Rahmawati", Email: "siti.rahmawati@legali.io",
			Credentials:  []string{"S.H., M.Kn., Universitas Gadjah Mada"},
			Jurisdiction: []string{"Yogyakarta", "Jakarta"},
			Specialties:  []string{"Real Estate", "Notarial Services"},
			Experience:   6, Rating: 4.5, ReviewCount: 31, HourlyRate: 100,
			Availability: models.AvailabilityAvailable,
			Languages:    []string{"Indonesian", "Javanese"},
			Bio:          "Property and land title specialist handling transactions and disputes.",
			VerificationStatus: models.VerificationPending,
			CreatedAt:          seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "8", Name: "James Whitfield", Email: "james.whitfield@legali.io",
			Credentials:  []string{"J.D., University of Chicago Law School"},
			Jurisdiction: []string{"Illinois"},
			Specialties:  []string{"Immigration Law"},
			Experience:   4, Rating: 4.2, ReviewCount: 19, HourlyRate: 200,
			Availability: models.AvailabilityBusy,
			Languages:    []string{"English", "Spanish"},
			Bio:          "Immigration lawyer handling work visas and family petitions.",
			VerificationStatus: models.VerificationUnverified,
			DisciplinaryHistory: []models.DisciplinaryRecord{
				{ID: "dr-1", Date: "2021-04-02", Description: "Late filing notice", Resolution: "Dismissed"},
			},
			CreatedAt: seedTime, UpdatedAt: seedTime,
		},
	}
}

func seedReviews() []models.Review {
	return []models.Review{
		{ID: "r1", LawyerID: "1", ClientName: "Tom Becker", Rating: 5, Comment: "Sarah closed our seed round in record time.", CaseType: "Corporate Law", Date: "2024-05-02", VerificationStatus: models.VerificationVerified},
		{ID: "r2", LawyerID: "1", ClientName: "Priya Nair", Rating: 4.8, Comment: "Clear advice and fair billing.", CaseType: "Securities", Date: "2024-03-18", VerificationStatus: models.VerificationVerified, IsAnonymous: true},
		{ID: "r3", LawyerID: "2", ClientName: "Luis Ortega", Rating: 5, Comment: "Fought hard and got a great settlement.", CaseType: "Personal Injury", Date: "2024-04-11", VerificationStatus: models.VerificationVerified},
		{ID: "r4", LawyerID: "3", ClientName: "Karen Moss", Rating: 4.5, Comment: "Kept a difficult custody case calm.", CaseType: "Child Custody", Date: "2024-02-27", VerificationStatus: models.VerificationPending},
		{ID: "r5", LawyerID: "4", ClientName: "Jin Park", Rating: 4.7, Comment: "Our patent was granted without an office action.", CaseType: "Patent Law", Date: "2024-01-30", VerificationStatus: models.VerificationVerified},
		{ID: "r6", LawyerID: "5", ClientName: "Andi Wijaya", Rating: 4.9, Comment: "Resolved our labour dispute quickly.", CaseType: "Employment Law", Date: "2024-06-05", VerificationStatus: models.VerificationVerified},
	}
}

func seedCases() []models.LitigationCase {
	return []models.LitigationCase{
		{
			ID:                 "1",
			Title:              "Employment Discrimination Class Action",
			Description:        "Seeking justice for systematic workplace discrimination affecting over 200 employees. Strong evidence of discriminatory practices with significant potential for recovery.",
			Summary:            "Class action lawsuit against Fortune 500 company for workplace discrimination affecting 200+ employees.",
			Category:           "Employment Law",
			PracticeArea:       "Employment Law",
			FundingGoal:        250000,
			AmountRaised:       180000,
			InvestorCount:      47,
			RiskLevel:          models.RiskMedium,
			RiskProfile:        models.RiskMedium,
			ExpectedReturn:     "2.5x - 4x",
			ExpectedReturnMin:  2.5,
			ExpectedReturnMax:  4.0,
			Timeframe:          "18-24 months",
			LawFirm:            "Thompson & Associates LLP",
			LeadCounsel:        "Sarah Thompson, Esq.",
			CounselExperience:  "15 years employment law",
			Image:              "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?w=800",
			Status:             models.CaseStatusActive,
			FundingStage:       "Active Funding",
			ProgressPercentage: 72,
			DaysRemaining:      45,
			MinimumInvestment:  1000,
			CaseType:           "Class Action",
			Jurisdiction:       "California",
			FiledDate:          "2024-03-15",
			LastUpdate:         "2024-06-20",
			DisclosureDocument: "/docs/case-1-disclosure.pdf",
			KYCRequired:        true,
			EscrowStatus:       "Active",
			Updates: []models.CaseUpdate{
				{Date: "2024-06-20", Title: "Discovery Phase Completed", Content: "Successfully completed discovery phase. Evidence strongly supports our case."},
				{Date: "2024-05-15", Title: "Additional Plaintiffs Added", Content: "Added 35 additional plaintiffs, strengthening our class action."},
			},
			KeyFactors:      []string{"Strong documentary evidence", "Experienced legal team", "Clear damages calculation", "Favorable jurisdiction"},
			Risks:           []string{"Defendant may appeal", "Settlement negotiations ongoing", "Regulatory changes possible"},
			AdminStatus:     models.AdminStatusApproved,
			ComplianceNotes: "KYC verification required for all investors",
		},
		{
			ID:                 "2",
			Title:              "Patent Infringement Dispute",
			Description:        "Major tech company patent infringement case with clear evidence of unauthorized use of patented technology.",
			Summary:            "Patent infringement litigation against major technology corporation for unauthorized use of proprietary algorithms.",
			Category:           "Intellectual Property",
			PracticeArea:       "Intellectual Property",
			FundingGoal:        500000,
			AmountRaised:       125000,
			InvestorCount:      23,
			RiskLevel:          models.RiskHigh,
			RiskProfile:        models.RiskHigh,
			ExpectedReturn:     "3x - 6x",
			ExpectedReturnMin:  3.0,
			ExpectedReturnMax:  6.0,
			Timeframe:          "24-36 months",
			LawFirm:            "IP Law Partners",
			LeadCounsel:        "Michael Chen, Esq.",
			CounselExperience:  "20 years IP litigation",
			Image:              "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=800",
			Status:             models.CaseStatusActive,
			FundingStage:       "Early Funding",
			ProgressPercentage: 25,
			DaysRemaining:      120,
			MinimumInvestment:  5000,
			CaseType:           "Patent Litigation",
			Jurisdiction:       "Delaware",
			FiledDate:          "2024-01-10",
			LastUpdate:         "2024-06-18",
			DisclosureDocument: "/docs/case-2-disclosure.pdf",
			KYCRequired:        true,
			EscrowStatus:       "Pending Threshold",
			Updates: []models.CaseUpdate{
				{Date: "2024-06-18", Title: "Case Accepted by Court", Content: "Federal court has accepted our case for trial. Preliminary motions scheduled."},
			},
			KeyFactors:      []string{"Valid patent claims", "Clear infringement evidence", "High damages potential", "Experienced IP counsel"},
			Risks:           []string{"Patent validity challenges", "Complex technical arguments", "Long litigation timeline", "Appeal likelihood"},
			AdminStatus:     models.AdminStatusApproved,
			ComplianceNotes: "Accredited investors only due to high risk profile",
		},
		{
			ID:                 "3",
			Title:              "Personal Injury Settlement",
			Description:        "Medical malpractice case with strong liability and significant damages. Hospital negligence resulted in permanent injury.",
			Summary:            "Medical malpractice lawsuit with clear negligence and documented damages against major hospital system.",
			Category:           "Personal Injury",
			PracticeArea:       "Personal Injury",
			FundingGoal:        150000,
			AmountRaised:       150000,
			InvestorCount:      62,
			RiskLevel:          models.RiskLow,
			RiskProfile:        models.RiskLow,
			ExpectedReturn:     "1.8x - 2.5x",
			ExpectedReturnMin:  1.8,
			ExpectedReturnMax:  2.5,
			Timeframe:          "12-18 months",
			LawFirm:            "Injury Law Center",
			LeadCounsel:        "David Rodriguez, Esq.",
			CounselExperience:  "12 years personal injury",
			Image:              "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=800",
			Status:             models.CaseStatusFunded,
			FundingStage:       "Fully Funded",
			ProgressPercentage: 100,
			DaysRemaining:      0,
			MinimumInvestment:  500,
			CaseType:           "Medical Malpractice",
			Jurisdiction:       "New York",
			FiledDate:          "2024-02-20",
			LastUpdate:         "2024-06-25",
			DisclosureDocument: "/docs/case-3-disclosure.pdf",
			KYCRequired:        true,
			EscrowStatus:       "Released",
			Updates: []models.CaseUpdate{
				{Date: "2024-06-25", Title: "Settlement Negotiations Advanced", Content: "Productive settlement discussions with hospital administration. Mediation scheduled."},
				{Date: "2024-05-10", Title: "Expert Testimony Secured", Content: "Leading medical expert agrees to testify. Strengthens malpractice claims significantly."},
			},
			KeyFactors:      []string{"Clear medical negligence", "Expert witness testimony", "Documented damages", "Favorable precedents"},
			Risks:           []string{"Settlement amount uncertainty", "Medical review board challenges"},
			AdminStatus:     models.AdminStatusApproved,
			ComplianceNotes: "Standard due diligence completed",
		},
		{
			ID:                 "4",
			Title:              "Securities Fraud Investor Claim",
			Description:        "Investors misled by inflated revenue figures in a public offering seek to recover losses.",
			Summary:            "Securities class claim following a restatement of three years of revenue.",
			Category:           "Securities Litigation",
			PracticeArea:       "Securities Litigation",
			FundingGoal:        400000,
			AmountRaised:       40000,
			InvestorCount:      9,
			RiskLevel:          models.RiskHigh,
			RiskProfile:        models.RiskHigh,
			ExpectedReturn:     "4x - 7x",
			ExpectedReturnMin:  4.0,
			ExpectedReturnMax:  7.0,
			Timeframe:          "30-42 months",
			LawFirm:            "Barrett Securities Group",
			LeadCounsel:        "Helen Barrett, Esq.",
			CounselExperience:  "22 years securities litigation",
			Status:             models.CaseStatusActive,
			FundingStage:       "Early Funding",
			ProgressPercentage: 10,
			DaysRemaining:      90,
			MinimumInvestment:  2500,
			CaseType:           "Class Action",
			Jurisdiction:       "New York",
			FiledDate:          "2024-05-28",
			LastUpdate:         "2024-06-10",
			KYCRequired:        true,
			EscrowStatus:       "Pending Threshold",
			AdminStatus:        models.AdminStatusPending,
			ComplianceNotes:    "Awaiting disclosure document review",
		},
		{
			ID:                 "5",
			Title:              "Regional Price-Fixing Claim",
			Description:        "Distributors allege coordinated price fixing among regional cement suppliers.",
			Summary:            "Antitrust damages claim brought by independent distributors.",
			Category:           "Antitrust",
			PracticeArea:       "Antitrust",
			FundingGoal:        300000,
			AmountRaised:       0,
			RiskLevel:          models.RiskHigh,
			RiskProfile:        models.RiskHigh,
			ExpectedReturn:     "3x - 5x",
			ExpectedReturnMin:  3.0,
			ExpectedReturnMax:  5.0,
			Timeframe:          "36-48 months",
			LawFirm:            "Meridian Legal",
			LeadCounsel:        "Omar Haddad, Esq.",
			Status:             models.CaseStatusCancelled,
			FundingStage:       "Early Funding",
			MinimumInvestment:  1000,
			CaseType:           "Antitrust",
			Jurisdiction:       "Texas",
			FiledDate:          "2024-04-02",
			AdminStatus:        models.AdminStatusRejected,
			ComplianceNotes:    "Rejected: counsel conflict of interest",
		},
		{
			ID:                 "6",
			Title:              "Defective Airbag Product Liability",
			Description:        "Consumers injured by defective airbag inflators pursue the manufacturer for damages.",
			Summary:            "Product liability claim over a recalled airbag inflator design.",
			Category:           "Product Liability",
			PracticeArea:       "Product Liability",
			FundingGoal:        200000,
			AmountRaised:       150000,
			InvestorCount:      31,
			RiskLevel:          models.RiskMedium,
			RiskProfile:        models.RiskMedium,
			ExpectedReturn:     "1.5x - 2.2x",
			ExpectedReturnMin:  1.5,
			ExpectedReturnMax:  2.2,
			Timeframe:          "12-24 months",
			LawFirm:            "Carter Injury Lawyers",
			LeadCounsel:        "Rachel Carter, Esq.",
			CounselExperience:  "16 years product liability",
			Status:             models.CaseStatusActive,
			FundingStage:       "Pre-Settlement",
			ProgressPercentage: 75,
			DaysRemaining:      20,
			MinimumInvestment:  750,
			CaseType:           "Product Liability",
			Jurisdiction:       "Michigan",
			FiledDate:          "2023-11-08",
			LastUpdate:         "2024-06-01",
			KYCRequired:        true,
			EscrowStatus:       "Active",
			Updates: []models.CaseUpdate{
				{Date: "2024-06-01", Title: "Mediation Date Set", Content: "Parties agreed to mediation in August."},
			},
			KeyFactors:  []string{"Public recall", "Documented injuries"},
			Risks:       []string{"Bankruptcy of supplier"},
			AdminStatus: models.AdminStatusApproved,
		},
	}
}
