package integration_test

const (
	// User related constants
	TestUserId        = 1
	TestUserFirstName = "Tunde"
	TestUserLastName  = "Ojo"
	TestUserEmail     = "test@example.com"
	TestUserPassword  = "Test123!@#"

	// Token related constants
	TestToken = "r8zEhnVzNTZDf8WypfYBTU_FkFUm9jXnTmMrK-WuFQ8"

	// Course related constants, matching testdata/courses_up.sql
	TestPaidCourseId     = 1
	TestPaidCourseSlug   = "practical-go"
	TestDonationCourseId = 2
	TestFreeCourseId     = 3
)
