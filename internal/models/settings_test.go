package models_test

import (
	"github.com/Flexingg/Savings-Web/internal/models"
	"github.com/Flexingg/Savings-Web/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSettingsBootstrap() {
	var settings models.Settings
	err := models.DB.First(&settings).Error
	suite.Require().Nil(err, "The settings record must exist after the database connection")

	suite.Assert().True(settings.DailyMax.Equal(decimal.NewFromFloat(50)), "DailyMax is %s, should be 50", settings.DailyMax)
	suite.Assert().True(settings.HouseGoal.Equal(decimal.NewFromFloat(100000)), "HouseGoal is %s, should be 100000", settings.HouseGoal)
	suite.Assert().True(settings.CurrentSavings.IsZero(), "CurrentSavings is %s, should be 0", settings.CurrentSavings)
}

func (suite *TestSuiteStandard) TestSettingsSingleton() {
	var count int64
	err := models.DB.Model(&models.Settings{}).Count(&count).Error
	suite.Require().Nil(err)

	suite.Assert().Equal(int64(1), count, "There are %d settings records, there must be exactly 1", count)
}

func (suite *TestSuiteStandard) TestSettingsUpdateSurvivesMigration() {
	dsn := test.TmpFile(suite.T())
	suite.Require().Nil(models.Connect(dsn))

	var settings models.Settings
	suite.Require().Nil(models.DB.First(&settings).Error)

	err := models.DB.Model(&settings).Update("CurrentSavings", decimal.NewFromFloat(1337.42)).Error
	suite.Require().Nil(err)

	// Reconnecting runs the migration again, the settings must not be reset
	suite.CloseDB()
	suite.Require().Nil(models.Connect(dsn))

	var reread models.Settings
	suite.Require().Nil(models.DB.First(&reread).Error)
	suite.Assert().True(reread.CurrentSavings.Equal(decimal.NewFromFloat(1337.42)))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Settings{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
